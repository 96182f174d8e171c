package article

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"coauthor/article-service/internal/dto"
	"coauthor/article-service/internal/pkg/response"
)

// DiffService 版本对比
type DiffService struct {
	versionService *VersionService
	log            zerolog.Logger
}

func NewDiffService(db *gorm.DB, log zerolog.Logger) *DiffService {
	return &DiffService{
		versionService: NewVersionService(db, log),
		log:            log.With().Str("service", "diff").Logger(),
	}
}

// CompareVersions 对比同一文章的两个版本
// 差异列表中所有 added 在前、deleted 在后；added 的行号与署名取自 v2，
// deleted 取自 v1
func (s *DiffService) CompareVersions(articleID uint, v1, v2 int) (*dto.CompareResponse, *response.BusinessError) {
	version1, bizErr := s.versionService.GetVersion(articleID, v1)
	if bizErr != nil {
		return nil, bizErr
	}
	version2, bizErr := s.versionService.GetVersion(articleID, v2)
	if bizErr != nil {
		return nil, bizErr
	}

	added, deleted := ComputeLineDiff(version1.Content, version2.Content)

	differences := make([]dto.DiffEntry, 0, len(added)+len(deleted))
	for _, line := range added {
		differences = append(differences, dto.DiffEntry{
			Type:       "added",
			LineNumber: line.Number,
			Content:    line.Content,
			User:       version2.Username,
		})
	}
	for _, line := range deleted {
		differences = append(differences, dto.DiffEntry{
			Type:       "deleted",
			LineNumber: line.Number,
			Content:    line.Content,
			User:       version1.Username,
		})
	}

	return &dto.CompareResponse{
		Version1:    *version1,
		Version2:    *version2,
		Differences: differences,
	}, nil
}
