package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/touchpointee/avanyaa-store/internal/models"
)

const bigSizeSectionLimit = 12

// sectionView is a homepage section with its product references resolved.
type sectionView struct {
	ID         primitive.ObjectID  `json:"id"`
	Type       string              `json:"type"`
	Title      string              `json:"title"`
	Order      int                 `json:"order"`
	CategoryID *primitive.ObjectID `json:"categoryId"`
	Products   []models.Product    `json:"products"`
}

// assembleSections resolves each section's linked product ids against the
// fetched product map, preserving the configured order and dropping ids
// that no longer resolve. big_size sections are filled from the separately
// queried big-size products instead.
func assembleSections(
	sections []models.HomepageSection,
	productsByID map[primitive.ObjectID]models.Product,
	bigSizeProducts []models.Product,
) []sectionView {
	views := make([]sectionView, 0, len(sections))

	for _, section := range sections {
		view := sectionView{
			ID:         section.ID,
			Type:       section.Type,
			Title:      section.Title,
			Order:      section.Order,
			CategoryID: section.CategoryID,
		}

		if section.Type == models.SectionTypeBigSize {
			if view.Title == "" {
				view.Title = "Big Size"
			}
			view.Products = bigSizeProducts
			views = append(views, view)
			continue
		}

		products := make([]models.Product, 0, len(section.LinkedProductIDs))
		for _, id := range section.LinkedProductIDs {
			if product, ok := productsByID[id]; ok {
				products = append(products, product)
			}
		}
		view.Products = products
		views = append(views, view)
	}

	return views
}

func linkedProductIDs(sections []models.HomepageSection) []primitive.ObjectID {
	seen := map[primitive.ObjectID]struct{}{}
	ids := make([]primitive.ObjectID, 0)
	for _, section := range sections {
		for _, id := range section.LinkedProductIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

func hasBigSizeSection(sections []models.HomepageSection) bool {
	for _, section := range sections {
		if section.Type == models.SectionTypeBigSize {
			return true
		}
	}
	return false
}

// GetHomepage aggregates everything the storefront home needs in one
// response: active banners, active categories, and active sections with
// their products resolved.
func GetHomepage(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/homepage"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		banners, err := findActiveBanners(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		categories, err := findActiveCategories(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		sections, err := findActiveSections(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		productsByID, err := findProductsByIDs(ctx, db, linkedProductIDs(sections))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		var bigSizeProducts []models.Product
		if hasBigSizeSection(sections) {
			bigSizeProducts, err = findBigSizeProducts(ctx, db)
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"banners":    banners,
			"categories": categories,
			"sections":   assembleSections(sections, productsByID, bigSizeProducts),
		})
	}
}

func findActiveBanners(ctx context.Context, db *mongo.Database) ([]models.Banner, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "type", Value: 1}, {Key: "order", Value: 1}})

	cursor, err := db.Collection("banners").Find(ctx, bson.M{"active": true}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	banners := make([]models.Banner, 0)
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func findActiveCategories(ctx context.Context, db *mongo.Database) ([]models.Category, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := db.Collection("categories").Find(ctx, bson.M{"active": true}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := make([]models.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func findActiveSections(ctx context.Context, db *mongo.Database) ([]models.HomepageSection, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := db.Collection("homepage_sections").Find(ctx, bson.M{"active": true}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sections := make([]models.HomepageSection, 0)
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func findProductsByIDs(ctx context.Context, db *mongo.Database, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	productsByID := make(map[primitive.ObjectID]models.Product, len(ids))
	if len(ids) == 0 {
		return productsByID, nil
	}

	cursor, err := db.Collection("products").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products, err := decodeProducts(ctx, cursor)
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		productsByID[product.ID] = product
	}
	return productsByID, nil
}

func findBigSizeProducts(ctx context.Context, db *mongo.Database) ([]models.Product, error) {
	filter := bson.M{"sizes": bson.M{"$in": bigSizeNames(ctx, db)}}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(bigSizeSectionLimit)

	cursor, err := db.Collection("products").Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeProducts(ctx, cursor)
}
