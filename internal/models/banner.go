package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BannerTypeHero     = "hero"
	BannerTypePromo    = "promo"
	BannerTypeCategory = "category"
)

type Banner struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Type       string              `bson:"type" json:"type"`
	Image      string              `bson:"image" json:"image"`
	Title      string              `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle   string              `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	ButtonText string              `bson:"buttonText,omitempty" json:"buttonText,omitempty"`
	Link       string              `bson:"link,omitempty" json:"link,omitempty"`
	Active     bool                `bson:"active" json:"active"`
	Order      int                 `bson:"order" json:"order"`
	CategoryID *primitive.ObjectID `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time           `bson:"updatedAt" json:"updatedAt"`
}

func ValidBannerType(t string) bool {
	switch t {
	case BannerTypeHero, BannerTypePromo, BannerTypeCategory:
		return true
	}
	return false
}
