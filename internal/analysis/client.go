// Package analysis 外部文本分析服务的客户端与缓存
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"coauthor/article-service/config"
)

// Client 文本分析服务 HTTP 客户端
// 每次调用都带超时，失败由上层降级，这里只返回错误
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

func NewClient(cfg *config.AnalysisConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

type analyzeRequest struct {
	Content string `json:"content"`
	Mode    string `json:"mode,omitempty"`
}

type questionRequest struct {
	Content  string `json:"content"`
	Question string `json:"question"`
}

type analysisResult struct {
	Result string `json:"result"`
}

// Analyze 请求对正文做一次分析（摘要/润色等，由 mode 决定）
func (c *Client) Analyze(ctx context.Context, content, mode string) (string, error) {
	return c.post(ctx, "/analyze", analyzeRequest{Content: content, Mode: mode})
}

// Answer 基于正文回答一个问题
func (c *Client) Answer(ctx context.Context, content, question string) (string, error) {
	return c.post(ctx, "/question", questionRequest{Content: content, Question: question})
}

func (c *Client) post(ctx context.Context, path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// 读掉响应体，避免连接无法复用
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("analysis service returned status %d", resp.StatusCode)
	}

	var result analysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.Result, nil
}
