package models

import "testing"

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderStatusPlaced, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		if !ValidOrderStatus(s) {
			t.Errorf("%q should be a valid order status", s)
		}
	}
	for _, s := range []string{"", "pending", "PLACED", "returned"} {
		if ValidOrderStatus(s) {
			t.Errorf("%q should not be a valid order status", s)
		}
	}
}

func TestValidBannerType(t *testing.T) {
	for _, bt := range []string{BannerTypeHero, BannerTypePromo, BannerTypeCategory} {
		if !ValidBannerType(bt) {
			t.Errorf("%q should be a valid banner type", bt)
		}
	}
	for _, bt := range []string{"", "Hero", "sale"} {
		if ValidBannerType(bt) {
			t.Errorf("%q should not be a valid banner type", bt)
		}
	}
}

func TestValidSectionType(t *testing.T) {
	valid := []string{
		SectionTypeHero,
		SectionTypeFeaturedCategories,
		SectionTypeTrending,
		SectionTypeNewArrivals,
		SectionTypePromo,
		SectionTypeCategory,
		SectionTypeBigSize,
	}
	for _, st := range valid {
		if !ValidSectionType(st) {
			t.Errorf("%q should be a valid section type", st)
		}
	}
	for _, st := range []string{"", "bigsize", "carousel"} {
		if ValidSectionType(st) {
			t.Errorf("%q should not be a valid section type", st)
		}
	}
}
