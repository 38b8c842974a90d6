package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/touchpointee/avanyaa-store/internal/models"
)

// defaultBigSizes is the fallback big-size label set when the size registry
// is empty or unreadable.
var defaultBigSizes = []string{"XL", "XXL", "2XL", "3XL", "4XL"}

func defaultSizes() []interface{} {
	now := time.Now()
	names := []struct {
		name string
		big  bool
	}{
		{"XS", false}, {"S", false}, {"M", false}, {"L", false},
		{"XL", true}, {"XXL", true}, {"2XL", true}, {"3XL", true}, {"4XL", true},
	}

	docs := make([]interface{}, 0, len(names))
	for i, entry := range names {
		docs = append(docs, models.Size{
			Name:      entry.name,
			SortOrder: i,
			IsBigSize: entry.big,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return docs
}

// normalizeSizeName uppercases and trims a size label so "xl" and "XL"
// collide on the unique index.
func normalizeSizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// bigSizeNames returns the registry's big-size labels in sort order,
// falling back to the defaults when the registry is empty or the lookup
// fails.
func bigSizeNames(ctx context.Context, db *mongo.Database) []string {
	findOptions := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}})

	cursor, err := db.Collection("sizes").Find(ctx, bson.M{"isBigSize": true}, findOptions)
	if err != nil {
		log.Println("[SIZES] big size lookup failed:", err)
		return defaultBigSizes
	}
	defer cursor.Close(ctx)

	var sizes []models.Size
	if err := cursor.All(ctx, &sizes); err != nil {
		log.Println("[SIZES] big size decode failed:", err)
		return defaultBigSizes
	}
	if len(sizes) == 0 {
		return defaultBigSizes
	}

	names := make([]string, 0, len(sizes))
	for _, size := range sizes {
		names = append(names, size.Name)
	}
	return names
}

// GetSizes lists the size registry, seeding the defaults on first read.
func GetSizes(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/sizes"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		findOptions := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}})

		sizes, err := listSizes(ctx, db, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if len(sizes) == 0 {
			if _, err := db.Collection("sizes").InsertMany(ctx, defaultSizes()); err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			sizes, err = listSizes(ctx, db, findOptions)
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
		}

		c.JSON(http.StatusOK, sizes)
	}
}

func listSizes(ctx context.Context, db *mongo.Database, findOptions *options.FindOptions) ([]models.Size, error) {
	cursor, err := db.Collection("sizes").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sizes := make([]models.Size, 0)
	if err := cursor.All(ctx, &sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}

type sizeCreateRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder *int   `json:"sortOrder"`
	IsBigSize bool   `json:"isBigSize"`
}

type sizeUpdateRequest struct {
	Name      *string `json:"name"`
	SortOrder *int    `json:"sortOrder"`
	IsBigSize *bool   `json:"isBigSize"`
}

func CreateSize(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/sizes"
		defer handlePanic(c, route)

		var req sizeCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		name := normalizeSizeName(req.Name)
		if name == "" {
			respondWithError(c, http.StatusBadRequest, route, "size name is required")
			return
		}

		sortOrder := 999
		if req.SortOrder != nil {
			sortOrder = *req.SortOrder
		}

		size := models.Size{
			Name:      name,
			SortOrder: sortOrder,
			IsBigSize: req.IsBigSize,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("sizes").InsertOne(ctx, size)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				respondWithError(c, http.StatusConflict, route, "a size with this name already exists")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			size.ID = id
		}

		c.JSON(http.StatusCreated, size)
	}
}

func UpdateSize(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/sizes/:id"
		defer handlePanic(c, route)

		sizeID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req sizeUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		set := bson.M{"updatedAt": time.Now()}

		if req.Name != nil {
			name := normalizeSizeName(*req.Name)
			if name == "" {
				respondWithError(c, http.StatusBadRequest, route, "size name must not be empty")
				return
			}
			set["name"] = name
		}
		if req.SortOrder != nil {
			set["sortOrder"] = *req.SortOrder
		}
		if req.IsBigSize != nil {
			set["isBigSize"] = *req.IsBigSize
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var size models.Size
		err = db.Collection("sizes").FindOneAndUpdate(
			ctx,
			bson.M{"_id": sizeID},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&size)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "size not found")
			return
		}
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				respondWithError(c, http.StatusConflict, route, "a size with this name already exists")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, size)
	}
}

func DeleteSize(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/sizes/:id"
		defer handlePanic(c, route)

		sizeID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("sizes").DeleteOne(ctx, bson.M{"_id": sizeID})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "size not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "size deleted"})
	}
}
