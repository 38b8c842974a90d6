package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Homepage section types. Each admin-configured section drives one content
// block of the storefront's dynamic home layout.
const (
	SectionTypeHero               = "hero"
	SectionTypeFeaturedCategories = "featured_categories"
	SectionTypeTrending           = "trending"
	SectionTypeNewArrivals        = "new_arrivals"
	SectionTypePromo              = "promo"
	SectionTypeCategory           = "category"
	SectionTypeBigSize            = "big_size"
)

type HomepageSection struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Type             string               `bson:"type" json:"type"`
	Title            string               `bson:"title" json:"title"`
	LinkedProductIDs []primitive.ObjectID `bson:"linkedProductIds" json:"linkedProductIds"`
	CategoryID       *primitive.ObjectID  `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	Order            int                  `bson:"order" json:"order"`
	Active           bool                 `bson:"active" json:"active"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt" json:"updatedAt"`
}

func ValidSectionType(t string) bool {
	switch t {
	case SectionTypeHero, SectionTypeFeaturedCategories, SectionTypeTrending,
		SectionTypeNewArrivals, SectionTypePromo, SectionTypeCategory, SectionTypeBigSize:
		return true
	}
	return false
}
