package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/touchpointee/avanyaa-store/internal/models"
)

func TestAssembleSectionsResolvesLinkedProducts(t *testing.T) {
	first := models.Product{ID: primitive.NewObjectID(), Name: "Kurta"}
	second := models.Product{ID: primitive.NewObjectID(), Name: "Saree"}
	missing := primitive.NewObjectID()

	sections := []models.HomepageSection{
		{
			ID:               primitive.NewObjectID(),
			Type:             models.SectionTypeTrending,
			Title:            "Trending Now",
			Order:            1,
			LinkedProductIDs: []primitive.ObjectID{second.ID, missing, first.ID},
		},
	}
	productsByID := map[primitive.ObjectID]models.Product{
		first.ID:  first,
		second.ID: second,
	}

	views := assembleSections(sections, productsByID, nil)
	require.Len(t, views, 1)
	require.Len(t, views[0].Products, 2, "unresolvable ids are dropped")
	assert.Equal(t, "Saree", views[0].Products[0].Name, "configured order is preserved")
	assert.Equal(t, "Kurta", views[0].Products[1].Name)
}

func TestAssembleSectionsBigSize(t *testing.T) {
	bigSizeProducts := []models.Product{
		{ID: primitive.NewObjectID(), Name: "Oversized Tee"},
	}
	sections := []models.HomepageSection{
		{
			ID:               primitive.NewObjectID(),
			Type:             models.SectionTypeBigSize,
			LinkedProductIDs: []primitive.ObjectID{primitive.NewObjectID()},
		},
	}

	views := assembleSections(sections, nil, bigSizeProducts)
	require.Len(t, views, 1)
	assert.Equal(t, "Big Size", views[0].Title, "empty title falls back to Big Size")
	assert.Equal(t, bigSizeProducts, views[0].Products, "linked ids are ignored for big_size")
}

func TestAssembleSectionsKeepsExplicitBigSizeTitle(t *testing.T) {
	sections := []models.HomepageSection{
		{Type: models.SectionTypeBigSize, Title: "Plus Collection"},
	}
	views := assembleSections(sections, nil, nil)
	require.Len(t, views, 1)
	assert.Equal(t, "Plus Collection", views[0].Title)
}

func TestLinkedProductIDsDeduplicates(t *testing.T) {
	shared := primitive.NewObjectID()
	other := primitive.NewObjectID()

	sections := []models.HomepageSection{
		{LinkedProductIDs: []primitive.ObjectID{shared, other}},
		{LinkedProductIDs: []primitive.ObjectID{shared}},
	}

	ids := linkedProductIDs(sections)
	assert.ElementsMatch(t, []primitive.ObjectID{shared, other}, ids)
}

func TestHasBigSizeSection(t *testing.T) {
	assert.False(t, hasBigSizeSection(nil))
	assert.False(t, hasBigSizeSection([]models.HomepageSection{
		{Type: models.SectionTypeHero},
	}))
	assert.True(t, hasBigSizeSection([]models.HomepageSection{
		{Type: models.SectionTypeHero},
		{Type: models.SectionTypeBigSize},
	}))
}
