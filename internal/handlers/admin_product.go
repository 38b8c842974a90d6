package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/touchpointee/avanyaa-store/internal/models"
)

type productCreateRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Price          float64  `json:"price" binding:"required"`
	CompareAtPrice *float64 `json:"compareAtPrice"`
	Category       string   `json:"category"`
	CategoryID     string   `json:"categoryId"`
	Sizes          []string `json:"sizes"`
	Colors         []string `json:"colors"`
	Images         []string `json:"images" binding:"required"`
	Stock          int      `json:"stock"`
	Featured       bool     `json:"featured"`
}

type productUpdateRequest struct {
	Name           *string   `json:"name"`
	Description    *string   `json:"description"`
	Price          *float64  `json:"price"`
	CompareAtPrice *float64  `json:"compareAtPrice"`
	Category       *string   `json:"category"`
	CategoryID     *string   `json:"categoryId"`
	Sizes          *[]string `json:"sizes"`
	Colors         *[]string `json:"colors"`
	Images         *[]string `json:"images"`
	Stock          *int      `json:"stock"`
	Featured       *bool     `json:"featured"`
}

// CreateProduct inserts a new catalog product. The slug is derived from the
// name; a duplicate name is a conflict.
func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/products"
		defer handlePanic(c, route)

		var req productCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if req.Price < 0 || req.Stock < 0 {
			respondWithError(c, http.StatusBadRequest, route, "price and stock must not be negative")
			return
		}
		if len(req.Images) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "at least one image is required")
			return
		}

		slug := generateSlug(req.Name)
		if slug == "" {
			respondWithError(c, http.StatusBadRequest, route, "name is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("products").CountDocuments(ctx, bson.M{"slug": slug})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if count > 0 {
			respondWithError(c, http.StatusConflict, route, "product with this name already exists")
			return
		}

		product := models.Product{
			Name:           strings.TrimSpace(req.Name),
			Slug:           slug,
			Description:    req.Description,
			Price:          req.Price,
			CompareAtPrice: req.CompareAtPrice,
			Category:       strings.TrimSpace(req.Category),
			Sizes:          emptyIfNil(req.Sizes),
			Colors:         emptyIfNil(req.Colors),
			Images:         req.Images,
			Stock:          req.Stock,
			Featured:       req.Featured,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}

		if id := strings.TrimSpace(req.CategoryID); id != "" {
			categoryID, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid categoryId")
				return
			}
			product.CategoryID = &categoryID
		}

		res, err := db.Collection("products").InsertOne(ctx, product)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				respondWithError(c, http.StatusConflict, route, "product with this name already exists")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			product.ID = id
		}
		product.InStock = product.Stock > 0

		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProduct applies a partial update. Renaming re-derives the slug and
// checks it against other products.
func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/products/:id"
		defer handlePanic(c, route)

		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req productUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		set := bson.M{"updatedAt": time.Now()}
		unset := bson.M{}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			slug := generateSlug(name)
			if slug == "" {
				respondWithError(c, http.StatusBadRequest, route, "name must not be empty")
				return
			}

			count, err := db.Collection("products").CountDocuments(ctx, bson.M{
				"slug": slug,
				"_id":  bson.M{"$ne": productID},
			})
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			if count > 0 {
				respondWithError(c, http.StatusConflict, route, "product with this name already exists")
				return
			}

			set["name"] = name
			set["slug"] = slug
		}

		if req.Description != nil {
			set["description"] = *req.Description
		}
		if req.Price != nil {
			if *req.Price < 0 {
				respondWithError(c, http.StatusBadRequest, route, "price must not be negative")
				return
			}
			set["price"] = *req.Price
		}
		if req.CompareAtPrice != nil {
			set["compareAtPrice"] = *req.CompareAtPrice
		}
		if req.Category != nil {
			set["category"] = strings.TrimSpace(*req.Category)
		}
		if req.CategoryID != nil {
			if id := strings.TrimSpace(*req.CategoryID); id != "" {
				categoryID, err := primitive.ObjectIDFromHex(id)
				if err != nil {
					respondWithError(c, http.StatusBadRequest, route, "invalid categoryId")
					return
				}
				set["categoryId"] = categoryID
			} else {
				unset["categoryId"] = ""
			}
		}
		if req.Sizes != nil {
			set["sizes"] = *req.Sizes
		}
		if req.Colors != nil {
			set["colors"] = *req.Colors
		}
		if req.Images != nil {
			if len(*req.Images) == 0 {
				respondWithError(c, http.StatusBadRequest, route, "at least one image is required")
				return
			}
			set["images"] = *req.Images
		}
		if req.Stock != nil {
			if *req.Stock < 0 {
				respondWithError(c, http.StatusBadRequest, route, "stock must not be negative")
				return
			}
			set["stock"] = *req.Stock
		}
		if req.Featured != nil {
			set["featured"] = *req.Featured
		}

		update := bson.M{"$set": set}
		if len(unset) > 0 {
			update["$unset"] = unset
		}

		res, err := db.Collection("products").UpdateOne(ctx, bson.M{"_id": productID}, update)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		var product models.Product
		if err := db.Collection("products").FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		product.InStock = product.Stock > 0

		c.JSON(http.StatusOK, product)
	}
}

func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/products/:id"
		defer handlePanic(c, route)

		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("products").DeleteOne(ctx, bson.M{"_id": productID})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
