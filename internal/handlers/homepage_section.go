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

// GetHomepageSections lists sections in display order. Non-admin callers
// only see active ones.
func GetHomepageSections(db *mongo.Database, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/homepage-sections"
		defer handlePanic(c, route)

		filter := bson.M{}
		identity, _ := middleware.ParseIdentity(c.GetHeader("Authorization"), jwtSecret)
		if identity == nil || identity.Role != models.RoleAdmin {
			filter["active"] = true
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		findOptions := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

		cursor, err := db.Collection("homepage_sections").Find(ctx, filter, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		sections := make([]models.HomepageSection, 0)
		if err := cursor.All(ctx, &sections); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, sections)
	}
}

type sectionCreateRequest struct {
	Type             string   `json:"type"`
	Title            string   `json:"title"`
	LinkedProductIDs []string `json:"linkedProductIds"`
	CategoryID       string   `json:"categoryId"`
	Order            int      `json:"order"`
	Active           *bool    `json:"active"`
}

type sectionUpdateRequest struct {
	Type             *string   `json:"type"`
	Title            *string   `json:"title"`
	LinkedProductIDs *[]string `json:"linkedProductIds"`
	CategoryID       *string   `json:"categoryId"`
	Order            *int      `json:"order"`
	Active           *bool     `json:"active"`
}

func parseObjectIDList(values []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(values))
	for _, value := range values {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(value))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func CreateHomepageSection(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/homepage-sections"
		defer handlePanic(c, route)

		var req sectionCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		sectionType := req.Type
		if sectionType == "" {
			sectionType = models.SectionTypeTrending
		}
		if !models.ValidSectionType(sectionType) {
			respondWithError(c, http.StatusBadRequest, route, "invalid section type")
			return
		}

		linkedIDs, err := parseObjectIDList(req.LinkedProductIDs)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid linkedProductIds")
			return
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		section := models.HomepageSection{
			Type:             sectionType,
			Title:            req.Title,
			LinkedProductIDs: linkedIDs,
			Order:            req.Order,
			Active:           active,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}

		if id := strings.TrimSpace(req.CategoryID); id != "" {
			categoryID, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid categoryId")
				return
			}
			section.CategoryID = &categoryID
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("homepage_sections").InsertOne(ctx, section)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			section.ID = id
		}

		c.JSON(http.StatusCreated, section)
	}
}

func UpdateHomepageSection(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/homepage-sections/:id"
		defer handlePanic(c, route)

		sectionID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req sectionUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		set := bson.M{"updatedAt": time.Now()}
		unset := bson.M{}

		if req.Type != nil {
			if !models.ValidSectionType(*req.Type) {
				respondWithError(c, http.StatusBadRequest, route, "invalid section type")
				return
			}
			set["type"] = *req.Type
		}
		if req.Title != nil {
			set["title"] = *req.Title
		}
		if req.LinkedProductIDs != nil {
			linkedIDs, err := parseObjectIDList(*req.LinkedProductIDs)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid linkedProductIds")
				return
			}
			set["linkedProductIds"] = linkedIDs
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
		if req.Order != nil {
			set["order"] = *req.Order
		}
		if req.Active != nil {
			set["active"] = *req.Active
		}

		update := bson.M{"$set": set}
		if len(unset) > 0 {
			update["$unset"] = unset
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var section models.HomepageSection
		err = db.Collection("homepage_sections").FindOneAndUpdate(
			ctx,
			bson.M{"_id": sectionID},
			update,
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&section)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "section not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, section)
	}
}

func DeleteHomepageSection(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/homepage-sections/:id"
		defer handlePanic(c, route)

		sectionID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("homepage_sections").DeleteOne(ctx, bson.M{"_id": sectionID})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "section not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "section deleted"})
	}
}
