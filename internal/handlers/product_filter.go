package handlers

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// productListingParams are the supported catalog query parameters.
type productListingParams struct {
	Category   string
	CategoryID string
	MinPrice   string
	MaxPrice   string
	Size       string
	Color      string
	Search     string
	Featured   bool
	BigSize    bool
	Sort       string
}

// buildProductFilter translates listing parameters into a single query.
// bigSizes is the size registry's big-size name set, used only when the
// bigSize flag is on. categoryId wins over the category label when both are
// supplied.
func buildProductFilter(params productListingParams, bigSizes []string) bson.M {
	filter := bson.M{}

	if id := strings.TrimSpace(params.CategoryID); id != "" {
		if objectID, err := primitive.ObjectIDFromHex(id); err == nil {
			filter["categoryId"] = objectID
		}
	} else if category := strings.TrimSpace(params.Category); category != "" {
		filter["category"] = category
	}

	price := bson.M{}
	if min, err := strconv.ParseFloat(params.MinPrice, 64); err == nil {
		price["$gte"] = min
	}
	if max, err := strconv.ParseFloat(params.MaxPrice, 64); err == nil {
		price["$lte"] = max
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	if params.BigSize {
		filter["sizes"] = bson.M{"$in": bigSizes}
	} else if size := strings.TrimSpace(params.Size); size != "" {
		filter["sizes"] = size
	}

	if color := strings.TrimSpace(params.Color); color != "" {
		filter["colors"] = color
	}

	if params.Featured {
		filter["featured"] = true
	}

	if search := strings.TrimSpace(params.Search); search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"description": bson.M{"$regex": search, "$options": "i"}},
			{"category": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	return filter
}

// productSortOption maps a sort key to a mongo sort document. Unknown keys
// fall back to newest first.
func productSortOption(sort string) bson.D {
	switch sort {
	case "price-asc":
		return bson.D{{Key: "price", Value: 1}}
	case "price-desc":
		return bson.D{{Key: "price", Value: -1}}
	case "name":
		return bson.D{{Key: "name", Value: 1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}
