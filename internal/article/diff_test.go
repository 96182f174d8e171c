package article

import (
	"reflect"
	"testing"
)

func TestComputeLineDiff(t *testing.T) {
	tests := []struct {
		name        string
		before      string
		after       string
		wantAdded   []Line
		wantDeleted []Line
	}{
		{
			name:        "identical content",
			before:      "line1\nline2",
			after:       "line1\nline2",
			wantAdded:   nil,
			wantDeleted: nil,
		},
		{
			name:        "changed line reported on both sides",
			before:      "line1\nline2",
			after:       "line1\nlineX",
			wantAdded:   []Line{{Number: 2, Content: "lineX"}},
			wantDeleted: []Line{{Number: 2, Content: "line2"}},
		},
		{
			name:        "appended lines only added",
			before:      "line1",
			after:       "line1\nline2\nline3",
			wantAdded:   []Line{{Number: 2, Content: "line2"}, {Number: 3, Content: "line3"}},
			wantDeleted: nil,
		},
		{
			name:        "truncated lines only deleted",
			before:      "line1\nline2\nline3",
			after:       "line1",
			wantAdded:   nil,
			wantDeleted: []Line{{Number: 2, Content: "line2"}, {Number: 3, Content: "line3"}},
		},
		{
			name:   "no similarity alignment on insertion",
			before: "a\nb\nc",
			after:  "x\na\nb\nc",
			// 位置对比：插入一行会让后面每一行都错位
			wantAdded: []Line{
				{Number: 1, Content: "x"},
				{Number: 2, Content: "a"},
				{Number: 3, Content: "b"},
				{Number: 4, Content: "c"},
			},
			wantDeleted: []Line{
				{Number: 1, Content: "a"},
				{Number: 2, Content: "b"},
				{Number: 3, Content: "c"},
			},
		},
		{
			name:        "empty strings are single empty lines",
			before:      "",
			after:       "",
			wantAdded:   nil,
			wantDeleted: nil,
		},
		{
			name:        "empty to content",
			before:      "",
			after:       "hello",
			wantAdded:   []Line{{Number: 1, Content: "hello"}},
			wantDeleted: []Line{{Number: 1, Content: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, deleted := ComputeLineDiff(tt.before, tt.after)
			if !reflect.DeepEqual(added, tt.wantAdded) {
				t.Errorf("added = %v, want %v", added, tt.wantAdded)
			}
			if !reflect.DeepEqual(deleted, tt.wantDeleted) {
				t.Errorf("deleted = %v, want %v", deleted, tt.wantDeleted)
			}
		})
	}
}

func TestComputeLineDiffAsymmetry(t *testing.T) {
	// 对调参数后 added/deleted 应互换
	before, after := "line1\nline2", "line1\nlineX\nline3"

	added1, deleted1 := ComputeLineDiff(before, after)
	added2, deleted2 := ComputeLineDiff(after, before)

	if !reflect.DeepEqual(added1, deleted2) {
		t.Errorf("added(a,b) = %v, deleted(b,a) = %v, want equal", added1, deleted2)
	}
	if !reflect.DeepEqual(deleted1, added2) {
		t.Errorf("deleted(a,b) = %v, added(b,a) = %v, want equal", deleted1, added2)
	}
}

func TestComputeEditStats(t *testing.T) {
	stats := ComputeEditStats("hello world", "hello brave world")
	if stats.Inserted == 0 {
		t.Errorf("expected inserted > 0, got %d", stats.Inserted)
	}
	if stats.Deleted != 0 {
		t.Errorf("expected deleted = 0, got %d", stats.Deleted)
	}
	if stats.Distance == 0 {
		t.Errorf("expected distance > 0")
	}

	same := ComputeEditStats("abc", "abc")
	if same.Inserted != 0 || same.Deleted != 0 || same.Distance != 0 {
		t.Errorf("identical content should have zero stats, got %+v", same)
	}
}
