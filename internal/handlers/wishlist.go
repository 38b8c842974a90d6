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
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/touchpointee/avanyaa-store/internal/middleware"
	"github.com/touchpointee/avanyaa-store/internal/models"
)

// wishlistView resolves the stored product ids to full records for the
// storefront.
type wishlistView struct {
	UserID   primitive.ObjectID `json:"userId"`
	Products []models.Product   `json:"products"`
}

func loadWishlistView(ctx context.Context, db *mongo.Database, userID primitive.ObjectID) (wishlistView, error) {
	view := wishlistView{UserID: userID, Products: make([]models.Product, 0)}

	var wishlist models.Wishlist
	err := db.Collection("wishlists").FindOne(ctx, bson.M{"userId": userID}).Decode(&wishlist)
	if err == mongo.ErrNoDocuments {
		return view, nil
	}
	if err != nil {
		return view, err
	}

	if len(wishlist.ProductIDs) == 0 {
		return view, nil
	}

	productsByID, err := findProductsByIDs(ctx, db, wishlist.ProductIDs)
	if err != nil {
		return view, err
	}

	for _, id := range wishlist.ProductIDs {
		if product, ok := productsByID[id]; ok {
			view.Products = append(view.Products, product)
		}
	}
	return view, nil
}

// GetWishlist returns the caller's wishlist, creating an empty one on
// first access.
func GetWishlist(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/wishlist"
		defer handlePanic(c, route)

		identity := middleware.IdentityFrom(c)
		if identity == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		update := bson.M{
			"$setOnInsert": bson.M{
				"userId":     identity.UserID,
				"productIds": []primitive.ObjectID{},
				"createdAt":  time.Now(),
				"updatedAt":  time.Now(),
			},
		}
		_, err := db.Collection("wishlists").UpdateOne(
			ctx,
			bson.M{"userId": identity.UserID},
			update,
			options.Update().SetUpsert(true),
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		view, err := loadWishlistView(ctx, db, identity.UserID)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, view)
	}
}

type wishlistAddRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// AddToWishlist adds a product to the caller's wishlist. The product must
// exist; duplicates are ignored.
func AddToWishlist(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/wishlist"
		defer handlePanic(c, route)

		identity := middleware.IdentityFrom(c)
		if identity == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req wishlistAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		productID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.ProductID))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid productId")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("products").CountDocuments(ctx, bson.M{"_id": productID})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if count == 0 {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		update := bson.M{
			"$addToSet": bson.M{"productIds": productID},
			"$set":      bson.M{"updatedAt": time.Now()},
			"$setOnInsert": bson.M{
				"userId":    identity.UserID,
				"createdAt": time.Now(),
			},
		}
		_, err = db.Collection("wishlists").UpdateOne(
			ctx,
			bson.M{"userId": identity.UserID},
			update,
			options.Update().SetUpsert(true),
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		view, err := loadWishlistView(ctx, db, identity.UserID)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, view)
	}
}

// RemoveFromWishlist removes ?productId from the caller's wishlist.
func RemoveFromWishlist(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/wishlist"
		defer handlePanic(c, route)

		identity := middleware.IdentityFrom(c)
		if identity == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		raw := strings.TrimSpace(c.Query("productId"))
		if raw == "" {
			respondWithError(c, http.StatusBadRequest, route, "productId is required")
			return
		}

		productID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid productId")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		update := bson.M{
			"$pull": bson.M{"productIds": productID},
			"$set":  bson.M{"updatedAt": time.Now()},
		}
		_, err = db.Collection("wishlists").UpdateOne(ctx, bson.M{"userId": identity.UserID}, update)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		view, err := loadWishlistView(ctx, db, identity.UserID)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, view)
	}
}

type wishlistSyncRequest struct {
	ProductIDs []string `json:"productIds" binding:"required"`
}

// SyncWishlist merges a client-side wishlist into the stored one after
// login, deduplicating ids.
func SyncWishlist(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/wishlist/sync"
		defer handlePanic(c, route)

		identity := middleware.IdentityFrom(c)
		if identity == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req wishlistSyncRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		productIDs, err := parseObjectIDList(req.ProductIDs)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid productIds")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		update := bson.M{
			"$addToSet": bson.M{"productIds": bson.M{"$each": productIDs}},
			"$set":      bson.M{"updatedAt": time.Now()},
			"$setOnInsert": bson.M{
				"userId":    identity.UserID,
				"createdAt": time.Now(),
			},
		}
		_, err = db.Collection("wishlists").UpdateOne(
			ctx,
			bson.M{"userId": identity.UserID},
			update,
			options.Update().SetUpsert(true),
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		view, err := loadWishlistView(ctx, db, identity.UserID)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, view)
	}
}
