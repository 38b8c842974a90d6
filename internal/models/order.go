package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Admins move an order between these directly; only
// enum membership is validated.
const (
	OrderStatusPlaced    = "placed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// PaymentMethodCOD is the only supported payment method.
const PaymentMethodCOD = "cod"

// OrderItem is a frozen snapshot of the product at purchase time. Later
// product edits never alter historical orders.
type OrderItem struct {
	ProductID    primitive.ObjectID `bson:"productId" json:"productId"`
	ProductName  string             `bson:"productName" json:"productName"`
	ProductImage string             `bson:"productImage" json:"productImage"`
	Price        float64            `bson:"price" json:"price"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	Size         string             `bson:"size,omitempty" json:"size,omitempty"`
}

// Address is embedded in the order as a value object.
type Address struct {
	FullName string `bson:"fullName" json:"fullName"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	Street   string `bson:"street" json:"street"`
	City     string `bson:"city" json:"city"`
	State    string `bson:"state" json:"state"`
	ZipCode  string `bson:"zipCode" json:"zipCode"`
}

// Order defines the persisted order document. UserID is nil for guest
// checkout. Orders are created once and never deleted; status is the only
// field admins mutate afterwards.
type Order struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	OrderID       string              `bson:"orderId" json:"orderId"`
	UserID        *primitive.ObjectID `bson:"userId" json:"userId"`
	Items         []OrderItem         `bson:"items" json:"items"`
	TotalAmount   float64             `bson:"totalAmount" json:"totalAmount"`
	Address       Address             `bson:"address" json:"address"`
	Status        string              `bson:"status" json:"status"`
	PaymentMethod string              `bson:"paymentMethod" json:"paymentMethod"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPlaced, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
