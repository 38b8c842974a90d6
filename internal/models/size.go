package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Size is an admin-managed size label. Labels flagged isBigSize feed the
// storefront's Big Size section and the bigSize product filter.
type Size struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	SortOrder int                `bson:"sortOrder" json:"sortOrder"`
	IsBigSize bool               `bson:"isBigSize" json:"isBigSize"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
