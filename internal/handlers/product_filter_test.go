package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildProductFilterEmpty(t *testing.T) {
	filter := buildProductFilter(productListingParams{}, nil)
	assert.Empty(t, filter)
}

func TestBuildProductFilterPriceRangeAndSize(t *testing.T) {
	filter := buildProductFilter(productListingParams{
		MinPrice: "1000",
		MaxPrice: "3000",
		Size:     "L",
	}, nil)

	price, ok := filter["price"].(bson.M)
	require.True(t, ok, "expected price clause")
	assert.Equal(t, 1000.0, price["$gte"])
	assert.Equal(t, 3000.0, price["$lte"])
	assert.Equal(t, "L", filter["sizes"])
}

func TestBuildProductFilterCategoryIDWinsOverLabel(t *testing.T) {
	categoryID := primitive.NewObjectID()

	filter := buildProductFilter(productListingParams{
		Category:   "Dresses",
		CategoryID: categoryID.Hex(),
	}, nil)

	assert.Equal(t, categoryID, filter["categoryId"])
	assert.NotContains(t, filter, "category")
}

func TestBuildProductFilterBigSizeOverridesSize(t *testing.T) {
	bigSizes := []string{"XL", "XXL", "2XL", "3XL", "4XL"}

	filter := buildProductFilter(productListingParams{
		Size:    "S",
		BigSize: true,
	}, bigSizes)

	sizes, ok := filter["sizes"].(bson.M)
	require.True(t, ok, "expected $in clause for sizes")
	assert.Equal(t, bigSizes, sizes["$in"])
}

func TestBuildProductFilterSearch(t *testing.T) {
	filter := buildProductFilter(productListingParams{Search: "linen"}, nil)

	clauses, ok := filter["$or"].([]bson.M)
	require.True(t, ok, "expected $or clause")
	require.Len(t, clauses, 3)
	for _, clause := range clauses {
		for _, value := range clause {
			regex, ok := value.(bson.M)
			require.True(t, ok)
			assert.Equal(t, "linen", regex["$regex"])
			assert.Equal(t, "i", regex["$options"])
		}
	}
}

func TestBuildProductFilterFeaturedAndColor(t *testing.T) {
	filter := buildProductFilter(productListingParams{
		Featured: true,
		Color:    "Black",
	}, nil)

	assert.Equal(t, true, filter["featured"])
	assert.Equal(t, "Black", filter["colors"])
}

func TestBuildProductFilterIgnoresMalformedPrices(t *testing.T) {
	filter := buildProductFilter(productListingParams{
		MinPrice: "abc",
		MaxPrice: "",
	}, nil)
	assert.NotContains(t, filter, "price")
}

func TestProductSortOption(t *testing.T) {
	tests := []struct {
		sort string
		want bson.D
	}{
		{"price-asc", bson.D{{Key: "price", Value: 1}}},
		{"price-desc", bson.D{{Key: "price", Value: -1}}},
		{"name", bson.D{{Key: "name", Value: 1}}},
		{"newest", bson.D{{Key: "createdAt", Value: -1}}},
		{"", bson.D{{Key: "createdAt", Value: -1}}},
		{"bogus", bson.D{{Key: "createdAt", Value: -1}}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, productSortOption(tt.sort), "sort=%q", tt.sort)
	}
}
