package permission

import "testing"

func TestDecide(t *testing.T) {
	const (
		author   = uint(1)
		reader   = uint(2)
		nobody   = uint(0)
	)

	tests := []struct {
		name           string
		isPublic       bool
		userID         uint
		isCollaborator bool
		want           bool
	}{
		{"public visible to anyone", true, nobody, false, true},
		{"private hidden from anonymous", false, nobody, false, false},
		{"private visible to author", false, author, false, true},
		{"private visible to collaborator", false, reader, true, true},
		{"private hidden from outsider", false, reader, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.isPublic, author, tt.userID, tt.isCollaborator)
			if got != tt.want {
				t.Errorf("Decide(%v, author, %d, %v) = %v, want %v",
					tt.isPublic, tt.userID, tt.isCollaborator, got, tt.want)
			}
		})
	}
}
