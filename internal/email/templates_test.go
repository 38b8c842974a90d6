package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/touchpointee/avanyaa-store/internal/models"
)

func sampleOrderEmailData() OrderEmailData {
	return OrderEmailData{
		OrderID:       "ORD-LX2K9F3A-7HQ4NZ",
		CustomerName:  "Priya Sharma",
		CustomerEmail: "priya@example.com",
		Items: []models.OrderItem{
			{
				ProductID:   primitive.NewObjectID(),
				ProductName: "Linen Wrap Dress",
				Price:       1299,
				Quantity:    2,
				Size:        "XL",
			},
			{
				ProductID:   primitive.NewObjectID(),
				ProductName: "Cotton Kurta",
				Price:       799,
				Quantity:    1,
			},
		},
		TotalAmount: 3397,
		Address: models.Address{
			FullName: "Priya Sharma",
			Phone:    "9876543210",
			Street:   "12 Rose Lane",
			City:     "Pune",
			State:    "MH",
			ZipCode:  "411001",
			Email:    "priya@example.com",
		},
	}
}

func TestRenderCustomerEmail(t *testing.T) {
	data := sampleOrderEmailData()

	html, err := renderCustomerEmail(data)
	require.NoError(t, err)

	assert.Contains(t, html, "ORD-LX2K9F3A-7HQ4NZ")
	assert.Contains(t, html, "Priya Sharma")
	assert.Contains(t, html, "Linen Wrap Dress")
	assert.Contains(t, html, "Cotton Kurta")
	assert.Contains(t, html, "Size: XL")
	assert.Contains(t, html, "3397")
	assert.Contains(t, html, "Cash on Delivery")
	assert.Contains(t, html, "12 Rose Lane")
	// line total for the first item: 1299 * 2
	assert.Contains(t, html, "2598")
}

func TestRenderCustomerEmailOmitsEmptySize(t *testing.T) {
	data := sampleOrderEmailData()
	data.Items = data.Items[1:]

	html, err := renderCustomerEmail(data)
	require.NoError(t, err)
	assert.NotContains(t, html, "Size:")
}

func TestRenderAdminEmail(t *testing.T) {
	data := sampleOrderEmailData()

	html, err := renderAdminEmail(data)
	require.NoError(t, err)

	assert.Contains(t, html, "New Order Received")
	assert.Contains(t, html, "ORD-LX2K9F3A-7HQ4NZ")
	assert.Contains(t, html, "priya@example.com")
	assert.Contains(t, html, "9876543210")
	assert.Contains(t, html, "Cotton Kurta")
	assert.Contains(t, html, "3397")
}

func TestTemplatesEscapeProductNames(t *testing.T) {
	data := sampleOrderEmailData()
	data.Items[0].ProductName = `<script>alert("x")</script>`

	html, err := renderCustomerEmail(data)
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>"), "product name should be HTML-escaped")
}
