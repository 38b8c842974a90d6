package handlers

import (
	"strings"
	"testing"
)

func TestGenerateOrderIDFormat(t *testing.T) {
	orderID := generateOrderID()

	if !strings.HasPrefix(orderID, "ORD-") {
		t.Fatalf("expected ORD- prefix, got %q", orderID)
	}

	parts := strings.Split(orderID, "-")
	if len(parts) != 3 {
		t.Fatalf("expected three dash-separated parts, got %q", orderID)
	}
	if len(parts[2]) != 6 {
		t.Fatalf("expected 6-character suffix, got %q", orderID)
	}
}

func TestGenerateOrderIDDistinct(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		orderID := generateOrderID()
		if _, ok := seen[orderID]; ok {
			t.Fatalf("duplicate order id after %d generations: %s", i, orderID)
		}
		seen[orderID] = struct{}{}
	}
}
