package article

import "strings"

// Line 一行差异，行号以该行所在版本自身的行序计，从1开始
type Line struct {
	Number  int
	Content string
}

// ComputeLineDiff 按行位置对比两份正文
// 不做相似度对齐：同一行号两侧内容不同时，该位置同时计入新增与删除
// 返回的新增取自 after，删除取自 before，各自按行号升序
func ComputeLineDiff(before, after string) (added, deleted []Line) {
	beforeLines := strings.Split(before, "\n")
	afterLines := strings.Split(after, "\n")

	for i, line := range afterLines {
		if i >= len(beforeLines) || beforeLines[i] != line {
			added = append(added, Line{Number: i + 1, Content: line})
		}
	}
	for i, line := range beforeLines {
		if i >= len(afterLines) || afterLines[i] != line {
			deleted = append(deleted, Line{Number: i + 1, Content: line})
		}
	}
	return added, deleted
}
