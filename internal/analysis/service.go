package analysis

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"coauthor/article-service/config"
	"coauthor/article-service/internal/database"
	"coauthor/article-service/internal/dto"
)

// 外部服务不可用时的降级文案
const degradedMessage = "分析服务暂时不可用，请稍后重试"

// AnalysisService 文本分析服务
// 分析结果按 (文章ID, 模式, 当前版本号) 缓存在 redis，正文变化后缓存键随版本号失效
// redis 未启用时直接透传，不缓存
type AnalysisService struct {
	client *Client
	rdb    *database.RedisClient
	cfg    *config.AnalysisConfig
	log    zerolog.Logger
}

func NewAnalysisService(cfg *config.AnalysisConfig, rdb *database.RedisClient, log zerolog.Logger) *AnalysisService {
	return &AnalysisService{
		client: NewClient(cfg),
		rdb:    rdb,
		cfg:    cfg,
		log:    log.With().Str("service", "analysis").Logger(),
	}
}

func cacheKey(articleID uint, mode string, version int) string {
	return fmt.Sprintf("analysis:%d:%s:%d", articleID, mode, version)
}

// Analyze 分析文章正文，命中缓存时不访问外部服务
// 外部服务失败时返回降级文案而不是错误
func (s *AnalysisService) Analyze(ctx context.Context, articleID uint, version int, content, mode string) dto.AnalysisResponse {
	key := cacheKey(articleID, mode, version)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			return dto.AnalysisResponse{Result: cached, Cached: true}
		}
	}

	result, err := s.client.Analyze(ctx, content, mode)
	if err != nil {
		s.log.Warn().Err(err).Uint("article_id", articleID).Str("mode", mode).Msg("analysis degraded")
		return dto.AnalysisResponse{Result: degradedMessage, Degraded: true}
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, key, result, s.cfg.CacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache analysis result failed")
		}
	}

	return dto.AnalysisResponse{Result: result}
}

// Answer 基于正文回答问题，不缓存（同一正文下问题任意）
func (s *AnalysisService) Answer(ctx context.Context, articleID uint, content, question string) dto.AnalysisResponse {
	result, err := s.client.Answer(ctx, content, question)
	if err != nil {
		s.log.Warn().Err(err).Uint("article_id", articleID).Msg("question degraded")
		return dto.AnalysisResponse{Result: degradedMessage, Degraded: true}
	}
	return dto.AnalysisResponse{Result: result}
}
