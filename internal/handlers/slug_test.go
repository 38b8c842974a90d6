package handlers

import "testing"

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Floral Summer Dress", "floral-summer-dress"},
		{"  Oversized  Hoodie  ", "oversized-hoodie"},
		{"V-Neck T-Shirt", "v-neck-t-shirt"},
		{"Dress (Limited Edition!)", "dress-limited-edition"},
		{"2XL Basics", "2xl-basics"},
		{"---", ""},
	}

	for _, tt := range tests {
		if got := generateSlug(tt.name); got != tt.want {
			t.Errorf("generateSlug(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGenerateSlugIsStable(t *testing.T) {
	first := generateSlug("Classic Denim Jacket")
	second := generateSlug("Classic Denim Jacket")
	if first != second {
		t.Fatalf("expected stable slug, got %q and %q", first, second)
	}
}
