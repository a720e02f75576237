package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// LaundryService is a marketplace offering. Documents are seeded out of
// band, so the fields here only cover what the API reads back.
type LaundryService struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
}
