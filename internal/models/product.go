package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name           string              `bson:"name" json:"name"`
	Slug           string              `bson:"slug" json:"slug"`
	Description    string              `bson:"description" json:"description"`
	Price          float64             `bson:"price" json:"price"`
	CompareAtPrice *float64            `bson:"compareAtPrice,omitempty" json:"compareAtPrice,omitempty"`
	Category       string              `bson:"category,omitempty" json:"category,omitempty"`
	CategoryID     *primitive.ObjectID `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	Sizes          []string            `bson:"sizes" json:"sizes"`
	Colors         []string            `bson:"colors" json:"colors"`
	Images         []string            `bson:"images" json:"images"`
	Stock          int                 `bson:"stock" json:"stock"`
	Featured       bool                `bson:"featured" json:"featured"`
	InStock        bool                `bson:"-" json:"inStock"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}
