package article

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// EditStats 一次编辑的规模统计，随通知附带，供前端展示编辑摘要
type EditStats struct {
	Inserted int `json:"inserted"`
	Deleted  int `json:"deleted"`
	Distance int `json:"distance"`
}

// ComputeEditStats 用字符级 diff 统计一次编辑插入/删除的字符数
func ComputeEditStats(before, after string) EditStats {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)

	var stats EditStats
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			stats.Inserted += len([]rune(d.Text))
		case diffmatchpatch.DiffDelete:
			stats.Deleted += len([]rune(d.Text))
		}
	}
	stats.Distance = dmp.DiffLevenshtein(diffs)
	return stats
}
