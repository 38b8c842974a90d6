package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/touchpointee/avanyaa-store/internal/email"
	"github.com/touchpointee/avanyaa-store/internal/middleware"
	"github.com/touchpointee/avanyaa-store/internal/models"
)

type insufficientStockError struct {
	ProductID   primitive.ObjectID
	ProductName string
	Available   int
	Requested   int
}

func (e insufficientStockError) Error() string {
	return "insufficient stock for " + e.ProductName
}

type productNotFoundError struct {
	ProductID primitive.ObjectID
}

func (e productNotFoundError) Error() string {
	return "product not found"
}

// CreateOrder places a cash-on-delivery order. The stock deduction for all
// items and the order insert run inside one transaction: every decrement is
// a conditional UpdateOne on stock >= quantity, so two simultaneous
// checkouts of the last unit cannot both succeed, and a failure on any item
// rolls back the deductions already applied.
func CreateOrder(db *mongo.Database, mailer *email.Mailer, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/orders"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		identity, err := middleware.ParseIdentity(c.GetHeader("Authorization"), jwtSecret)
		if err != nil {
			log.Println("[ORDER] [ERROR] token validation failed:", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if identity != nil && identity.Role == models.RoleAdmin {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in as a customer to place orders"})
			return
		}

		items, err := parseCheckoutItems(req.Items)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		address, err := parseCheckoutAddress(req.Address)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		order := models.Order{
			OrderID:       generateOrderID(),
			Items:         nil,
			Address:       address,
			Status:        models.OrderStatusPlaced,
			PaymentMethod: models.PaymentMethodCOD,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		if identity != nil {
			order.UserID = &identity.UserID
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		session, err := db.Client().StartSession()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer session.EndSession(ctx)

		var orderID primitive.ObjectID
		_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
			snapshots := make([]models.OrderItem, 0, len(items))

			for _, item := range items {
				var product models.Product
				err := db.Collection("products").FindOne(
					sessCtx,
					bson.M{"_id": item.ProductID},
				).Decode(&product)
				if err == mongo.ErrNoDocuments {
					return nil, productNotFoundError{ProductID: item.ProductID}
				}
				if err != nil {
					return nil, err
				}

				if product.Stock < item.Quantity {
					return nil, insufficientStockError{
						ProductID:   item.ProductID,
						ProductName: product.Name,
						Available:   product.Stock,
						Requested:   item.Quantity,
					}
				}

				filter := bson.M{
					"_id":   item.ProductID,
					"stock": bson.M{"$gte": item.Quantity},
				}
				update := bson.M{
					"$inc": bson.M{"stock": -item.Quantity},
					"$set": bson.M{"updatedAt": time.Now()},
				}

				res, err := db.Collection("products").UpdateOne(sessCtx, filter, update)
				if err != nil {
					return nil, err
				}
				if res.MatchedCount == 0 {
					return nil, insufficientStockError{
						ProductID:   item.ProductID,
						ProductName: product.Name,
						Available:   product.Stock,
						Requested:   item.Quantity,
					}
				}

				image := ""
				if len(product.Images) > 0 {
					image = product.Images[0]
				}
				snapshots = append(snapshots, models.OrderItem{
					ProductID:    product.ID,
					ProductName:  product.Name,
					ProductImage: image,
					Price:        product.Price,
					Quantity:     item.Quantity,
					Size:         item.Size,
				})
			}

			order.Items = snapshots
			order.TotalAmount = orderItemsTotal(snapshots)

			res, err := db.Collection("orders").InsertOne(sessCtx, order)
			if err != nil {
				return nil, err
			}
			if id, ok := res.InsertedID.(primitive.ObjectID); ok {
				orderID = id
			}
			return nil, nil
		})
		if err != nil {
			var stockErr insufficientStockError
			if errors.As(err, &stockErr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":     "insufficient stock for " + stockErr.ProductName,
					"productId": stockErr.ProductID.Hex(),
					"available": stockErr.Available,
					"requested": stockErr.Requested,
				})
				return
			}
			var notFoundErr productNotFoundError
			if errors.As(err, &notFoundErr) {
				c.JSON(http.StatusNotFound, gin.H{
					"error":     "product not found",
					"productId": notFoundErr.ProductID.Hex(),
				})
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if !orderID.IsZero() {
			order.ID = orderID
		}

		if order.UserID != nil {
			log.Println("[ORDER] [INFO] order created for user:", order.UserID.Hex())
		} else {
			log.Println("[ORDER] [INFO] guest order created")
		}

		mailer.DispatchOrderEmails(email.OrderEmailData{
			OrderID:       order.OrderID,
			CustomerName:  address.FullName,
			CustomerEmail: address.Email,
			Items:         order.Items,
			TotalAmount:   order.TotalAmount,
			Address:       address,
		})

		c.JSON(http.StatusCreated, order)
	}
}
