package dto

// CreateArticleRequest 创建文章请求
type CreateArticleRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Content  string `json:"content" binding:"required"`
	IsPublic bool   `json:"is_public"`
	Note     string `json:"note" binding:"omitempty,max=255"`
}

// UpdateArticleRequest 更新文章请求
// 指针字段缺省表示本次请求不修改该字段
// 正文与当前内容逐字节相同时不会产生新版本，其余字段照常更新
type UpdateArticleRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=255"`
	Content  *string `json:"content"`
	IsPublic *bool   `json:"is_public"`
	Note     string  `json:"note" binding:"omitempty,max=255"`
}

// AddCollaboratorRequest 添加协作者请求
type AddCollaboratorRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// ArticleResponse 文章响应
type ArticleResponse struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	AuthorID       uint   `json:"author_id"`
	IsPublic       bool   `json:"is_public"`
	CurrentVersion int    `json:"current_version"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// VersionResponse 版本响应，username 为读取时联查出的编辑者用户名
type VersionResponse struct {
	ID            uint   `json:"id"`
	ArticleID     uint   `json:"article_id"`
	VersionNumber int    `json:"version_number"`
	UserID        uint   `json:"user_id"`
	Username      string `json:"username"`
	Content       string `json:"content"`
	Note          string `json:"note"`
	CreatedAt     string `json:"created_at"`
}

// DiffEntry 单行差异
// 行号以各自版本自身的行序计（1起）
type DiffEntry struct {
	Type       string `json:"type"` // added, deleted
	LineNumber int    `json:"line_number"`
	Content    string `json:"content"`
	User       string `json:"user"`
}

// CompareResponse 版本对比结果
// differences 中所有 added 在前、deleted 在后，各自按行号升序
type CompareResponse struct {
	Version1    VersionResponse `json:"version1"`
	Version2    VersionResponse `json:"version2"`
	Differences []DiffEntry     `json:"differences"`
}

// AnalyzeRequest 文本分析请求
type AnalyzeRequest struct {
	Mode string `json:"mode" binding:"omitempty,max=50"`
}

// QuestionRequest 基于正文的提问请求
type QuestionRequest struct {
	Question string `json:"question" binding:"required"`
}

// AnalysisResponse 分析结果；degraded 表示外部服务失败后的降级文案
type AnalysisResponse struct {
	Result   string `json:"result"`
	Degraded bool   `json:"degraded"`
	Cached   bool   `json:"cached,omitempty"`
}
