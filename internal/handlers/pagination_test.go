package handlers

import "testing"

func TestParsePaginationParamsDefaults(t *testing.T) {
	page, limit, err := parsePaginationParams("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 1 || limit != 12 {
		t.Fatalf("expected defaults 1/12, got %d/%d", page, limit)
	}
}

func TestParsePaginationParamsExplicit(t *testing.T) {
	page, limit, err := parsePaginationParams("3", "24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 3 || limit != 24 {
		t.Fatalf("expected 3/24, got %d/%d", page, limit)
	}
}

func TestParsePaginationParamsInvalid(t *testing.T) {
	cases := [][2]string{
		{"0", "10"},
		{"-1", "10"},
		{"abc", "10"},
		{"1", "0"},
		{"1", "xyz"},
	}
	for _, c := range cases {
		if _, _, err := parsePaginationParams(c[0], c[1]); err == nil {
			t.Errorf("expected error for page=%q limit=%q", c[0], c[1])
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int64
	}{
		{0, 12, 0},
		{12, 12, 1},
		{13, 12, 2},
		{25, 12, 3},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := totalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}
