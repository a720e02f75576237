package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is free-form customer feedback. Writes are open, so nothing here
// is trusted beyond its shape.
type Review struct {
	Id           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ReviewerName string             `bson:"reviewerName" json:"reviewerName"`
	Rating       float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Content      string             `bson:"content,omitempty" json:"content,omitempty"`
}
