package paragraph

import (
	"reflect"
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"lowercases", []string{"Go", "SQLite"}, []string{"go", "sqlite"}},
		{"trims", []string{" go ", "web  "}, []string{"go", "web"}},
		{"drops empties", []string{"go", "", "  "}, []string{"go"}},
		{"drops duplicates silently", []string{"go", "GO", "go"}, []string{"go"}},
		{"preserves first-seen order", []string{"b", "a", "b"}, []string{"b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTags(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeTags(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTags(t *testing.T) {
	got := ParseTags(" Go, web ,go,, ")
	want := []string{"go", "web"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTags = %v, want %v", got, want)
	}
}
