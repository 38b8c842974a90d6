package handlers

import (
	"testing"

	"github.com/touchpointee/avanyaa-store/internal/models"
)

func TestNormalizeSizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"xl", "XL"},
		{"  2xl ", "2XL"},
		{"M", "M"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := normalizeSizeName(tt.in); got != tt.want {
			t.Errorf("normalizeSizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultSizesFlagBigSizes(t *testing.T) {
	docs := defaultSizes()
	if len(docs) != 9 {
		t.Fatalf("expected 9 default sizes, got %d", len(docs))
	}

	bigByName := map[string]bool{}
	for _, doc := range docs {
		size, ok := doc.(models.Size)
		if !ok {
			t.Fatalf("expected models.Size, got %T", doc)
		}
		bigByName[size.Name] = size.IsBigSize
	}

	for _, name := range []string{"XS", "S", "M", "L"} {
		if bigByName[name] {
			t.Errorf("%s should not be a big size", name)
		}
	}
	for _, name := range defaultBigSizes {
		if !bigByName[name] {
			t.Errorf("%s should be a big size", name)
		}
	}
}

func TestDefaultBigSizesSet(t *testing.T) {
	want := []string{"XL", "XXL", "2XL", "3XL", "4XL"}
	if len(defaultBigSizes) != len(want) {
		t.Fatalf("expected %d default big sizes, got %d", len(want), len(defaultBigSizes))
	}
	for i, name := range want {
		if defaultBigSizes[i] != name {
			t.Errorf("defaultBigSizes[%d] = %q, want %q", i, defaultBigSizes[i], name)
		}
	}
}
