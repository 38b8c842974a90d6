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

// GetBanners lists banners, optionally filtered by type. Non-admin callers
// only see active ones.
func GetBanners(db *mongo.Database, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/banners"
		defer handlePanic(c, route)

		filter := bson.M{}
		identity, _ := middleware.ParseIdentity(c.GetHeader("Authorization"), jwtSecret)
		if identity == nil || identity.Role != models.RoleAdmin {
			filter["active"] = true
		}
		if bannerType := strings.TrimSpace(c.Query("type")); bannerType != "" {
			filter["type"] = bannerType
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		findOptions := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

		cursor, err := db.Collection("banners").Find(ctx, filter, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		banners := make([]models.Banner, 0)
		if err := cursor.All(ctx, &banners); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, banners)
	}
}

type bannerCreateRequest struct {
	Type       string `json:"type"`
	Image      string `json:"image" binding:"required"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"buttonText"`
	Link       string `json:"link"`
	Active     *bool  `json:"active"`
	Order      int    `json:"order"`
	CategoryID string `json:"categoryId"`
}

type bannerUpdateRequest struct {
	Type       *string `json:"type"`
	Image      *string `json:"image"`
	Title      *string `json:"title"`
	Subtitle   *string `json:"subtitle"`
	ButtonText *string `json:"buttonText"`
	Link       *string `json:"link"`
	Active     *bool   `json:"active"`
	Order      *int    `json:"order"`
	CategoryID *string `json:"categoryId"`
}

func CreateBanner(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/banners"
		defer handlePanic(c, route)

		var req bannerCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		bannerType := req.Type
		if bannerType == "" {
			bannerType = models.BannerTypeHero
		}
		if !models.ValidBannerType(bannerType) {
			respondWithError(c, http.StatusBadRequest, route, "invalid banner type")
			return
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		banner := models.Banner{
			Type:       bannerType,
			Image:      req.Image,
			Title:      req.Title,
			Subtitle:   req.Subtitle,
			ButtonText: req.ButtonText,
			Link:       req.Link,
			Active:     active,
			Order:      req.Order,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		if id := strings.TrimSpace(req.CategoryID); id != "" {
			categoryID, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid categoryId")
				return
			}
			banner.CategoryID = &categoryID
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("banners").InsertOne(ctx, banner)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			banner.ID = id
		}

		c.JSON(http.StatusCreated, banner)
	}
}

func UpdateBanner(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/banners/:id"
		defer handlePanic(c, route)

		bannerID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req bannerUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		set := bson.M{"updatedAt": time.Now()}
		unset := bson.M{}

		if req.Type != nil {
			if !models.ValidBannerType(*req.Type) {
				respondWithError(c, http.StatusBadRequest, route, "invalid banner type")
				return
			}
			set["type"] = *req.Type
		}
		if req.Image != nil {
			set["image"] = *req.Image
		}
		if req.Title != nil {
			set["title"] = *req.Title
		}
		if req.Subtitle != nil {
			set["subtitle"] = *req.Subtitle
		}
		if req.ButtonText != nil {
			set["buttonText"] = *req.ButtonText
		}
		if req.Link != nil {
			set["link"] = *req.Link
		}
		if req.Active != nil {
			set["active"] = *req.Active
		}
		if req.Order != nil {
			set["order"] = *req.Order
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

		update := bson.M{"$set": set}
		if len(unset) > 0 {
			update["$unset"] = unset
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var banner models.Banner
		err = db.Collection("banners").FindOneAndUpdate(
			ctx,
			bson.M{"_id": bannerID},
			update,
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&banner)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "banner not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, banner)
	}
}

func DeleteBanner(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/banners/:id"
		defer handlePanic(c, route)

		bannerID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("banners").DeleteOne(ctx, bson.M{"_id": bannerID})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "banner not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "banner deleted"})
	}
}
