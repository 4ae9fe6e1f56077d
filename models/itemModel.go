package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories the storefront understands. Keep in sync with the frontend
// category filter.
var ItemCategories = []string{"Breakfast", "Lunch", "Dinner", "Mexican", "Italian", "Desserts", "Drinks"}

type Item struct {
	ID          primitive.ObjectID `bson:"_id" json:"-"`
	Item_id     string             `bson:"item_id" json:"itemId"`
	Name        string             `bson:"name" json:"name" validate:"required,min=1,max=100"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Rating      int                `bson:"rating" json:"rating" validate:"gte=1,lte=5"`
	Hearts      int                `bson:"hearts" json:"hearts" validate:"gte=0"`
	ImageURL    string             `bson:"image_url" json:"imageUrl"`
	Total       float64            `bson:"total" json:"total"`
	Created_at  time.Time          `bson:"created_at" json:"createdAt"`
	Updated_at  time.Time          `bson:"updated_at" json:"updatedAt"`
}
