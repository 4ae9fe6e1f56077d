package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id" json:"-"`
	User_id    string             `bson:"user_id" json:"userId"`
	Username   string             `bson:"username" json:"username"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password" json:"-"`
	Role       string             `bson:"role" json:"role"`
	FirstName  string             `bson:"first_name,omitempty" json:"firstName,omitempty"`
	LastName   string             `bson:"last_name,omitempty" json:"lastName,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address    string             `bson:"address,omitempty" json:"address,omitempty"`
	City       string             `bson:"city,omitempty" json:"city,omitempty"`
	ZipCode    string             `bson:"zip_code,omitempty" json:"zipCode,omitempty"`
	Created_at time.Time          `bson:"created_at" json:"createdAt"`
	Updated_at time.Time          `bson:"updated_at" json:"updatedAt"`
}
