package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentMethodCOD    = "cod"
	PaymentMethodOnline = "online"

	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
)

// OrderItem is a snapshot of the menu item at order time, so later item
// edits never change historical orders.
type OrderItem struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	ImageURL string  `bson:"image_url" json:"imageUrl"`
	Quantity int64   `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id" json:"-"`
	Order_id        string             `bson:"order_id" json:"orderId"`
	User_id         string             `bson:"user_id" json:"userId"`
	FirstName       string             `bson:"first_name" json:"firstName"`
	LastName        string             `bson:"last_name" json:"lastName"`
	Phone           string             `bson:"phone" json:"phone"`
	Email           string             `bson:"email" json:"email"`
	Address         string             `bson:"address" json:"address"`
	City            string             `bson:"city" json:"city"`
	ZipCode         string             `bson:"zip_code" json:"zipCode"`
	PaymentMethod   string             `bson:"payment_method" json:"paymentMethod"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	Tax             float64            `bson:"tax" json:"tax"`
	Shipping        float64            `bson:"shipping" json:"shipping"`
	Total           float64            `bson:"total" json:"total"`
	Items           []OrderItem        `bson:"items" json:"items"`
	PaymentStatus   string             `bson:"payment_status" json:"paymentStatus"`
	SessionID       string             `bson:"session_id,omitempty" json:"sessionId,omitempty"`
	PaymentIntentID string             `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	Created_at      time.Time          `bson:"created_at" json:"createdAt"`
	Updated_at      time.Time          `bson:"updated_at" json:"updatedAt"`
}
