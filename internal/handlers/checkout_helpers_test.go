package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/touchpointee/avanyaa-store/internal/models"
)

func validAddressRequest() checkoutAddressRequest {
	return checkoutAddressRequest{
		FullName: "Priya Sharma",
		Email:    "priya@example.com",
		Phone:    "9876543210",
		Street:   "12 MG Road",
		City:     "Bengaluru",
		State:    "Karnataka",
		ZipCode:  "560001",
	}
}

func TestParseCheckoutItems(t *testing.T) {
	productID := primitive.NewObjectID()

	items, err := parseCheckoutItems([]checkoutItemRequest{
		{ProductID: productID.Hex(), Quantity: 2, Size: "M"},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, productID, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "M", items[0].Size)
}

func TestParseCheckoutItemsEmptyCart(t *testing.T) {
	_, err := parseCheckoutItems(nil)
	assert.Error(t, err)
}

func TestParseCheckoutItemsInvalidProductID(t *testing.T) {
	_, err := parseCheckoutItems([]checkoutItemRequest{
		{ProductID: "not-an-object-id", Quantity: 1},
	})
	assert.Error(t, err)
}

func TestParseCheckoutItemsRejectsNonPositiveQuantity(t *testing.T) {
	productID := primitive.NewObjectID().Hex()
	for _, quantity := range []int{0, -3} {
		_, err := parseCheckoutItems([]checkoutItemRequest{
			{ProductID: productID, Quantity: quantity},
		})
		assert.Error(t, err, "quantity=%d", quantity)
	}
}

func TestParseCheckoutAddress(t *testing.T) {
	address, err := parseCheckoutAddress(validAddressRequest())
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", address.FullName)
	assert.Equal(t, "560001", address.ZipCode)
}

func TestParseCheckoutAddressMissingField(t *testing.T) {
	fields := []func(*checkoutAddressRequest){
		func(r *checkoutAddressRequest) { r.FullName = "" },
		func(r *checkoutAddressRequest) { r.Email = " " },
		func(r *checkoutAddressRequest) { r.Phone = "" },
		func(r *checkoutAddressRequest) { r.Street = "" },
		func(r *checkoutAddressRequest) { r.City = "" },
		func(r *checkoutAddressRequest) { r.State = "" },
		func(r *checkoutAddressRequest) { r.ZipCode = "" },
	}

	for i, clear := range fields {
		req := validAddressRequest()
		clear(&req)
		_, err := parseCheckoutAddress(req)
		assert.Error(t, err, "field %d", i)
	}
}

func TestParseCheckoutAddressEmailShape(t *testing.T) {
	bad := []string{"plainaddress", "@nodomain", "local@", "two@@signs", "with space@example.com"}
	for _, email := range bad {
		req := validAddressRequest()
		req.Email = email
		_, err := parseCheckoutAddress(req)
		assert.Error(t, err, "email=%q", email)
	}

	req := validAddressRequest()
	req.Email = "a@b"
	_, err := parseCheckoutAddress(req)
	assert.NoError(t, err, "coarse check should accept minimal local@domain")
}

func TestOrderItemsTotal(t *testing.T) {
	items := []models.OrderItem{
		{Price: 1000, Quantity: 2},
		{Price: 499.5, Quantity: 1},
	}
	assert.Equal(t, 2499.5, orderItemsTotal(items))
	assert.Equal(t, 0.0, orderItemsTotal(nil))
}
