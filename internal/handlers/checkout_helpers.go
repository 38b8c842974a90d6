package handlers

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/touchpointee/avanyaa-store/internal/models"
)

type checkoutItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Size      string `json:"size"`
}

type checkoutAddressRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

type checkoutRequest struct {
	Items   []checkoutItemRequest  `json:"items" binding:"required"`
	Address checkoutAddressRequest `json:"address" binding:"required"`
}

type checkoutItem struct {
	ProductID primitive.ObjectID
	Quantity  int
	Size      string
}

// parseCheckoutItems validates the cart line items without touching the
// database. Prices are never taken from the client.
func parseCheckoutItems(items []checkoutItemRequest) ([]checkoutItem, error) {
	if len(items) == 0 {
		return nil, errors.New("at least one item is required")
	}

	parsed := make([]checkoutItem, 0, len(items))
	for _, item := range items {
		productID, err := primitive.ObjectIDFromHex(strings.TrimSpace(item.ProductID))
		if err != nil {
			return nil, errors.New("invalid productId")
		}
		if item.Quantity <= 0 {
			return nil, errors.New("quantity must be greater than zero")
		}
		parsed = append(parsed, checkoutItem{
			ProductID: productID,
			Quantity:  item.Quantity,
			Size:      strings.TrimSpace(item.Size),
		})
	}

	return parsed, nil
}

// parseCheckoutAddress requires all seven address fields and a coarse
// local@domain email shape. No further normalization is applied.
func parseCheckoutAddress(req checkoutAddressRequest) (models.Address, error) {
	address := models.Address{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Street:   strings.TrimSpace(req.Street),
		City:     strings.TrimSpace(req.City),
		State:    strings.TrimSpace(req.State),
		ZipCode:  strings.TrimSpace(req.ZipCode),
	}

	if address.FullName == "" || address.Email == "" || address.Phone == "" ||
		address.Street == "" || address.City == "" || address.State == "" ||
		address.ZipCode == "" {
		return models.Address{}, errors.New("all address fields are required")
	}

	if !isEmailShaped(address.Email) {
		return models.Address{}, errors.New("invalid email address")
	}

	return address, nil
}

func isEmailShaped(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

func orderItemsTotal(items []models.OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
