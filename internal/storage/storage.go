// Package storage defines the store interfaces handlers and middleware
// depend on, plus the acknowledgement types their mutations echo back.
package storage

import (
	"github.com/washlava-dev/washlava/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InsertResult mirrors the store's insert acknowledgement. InsertedId is
// null when an idempotent create matched an existing document.
type InsertResult struct {
	InsertedId interface{} `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type UserStore interface {
	Users() ([]domain.User, error)
	// UserByEmail returns an ErrorWithStatusCode with status 404 when no
	// document matches.
	UserByEmail(email string) (domain.User, error)
	SaveUser(user domain.User) (InsertResult, error)
	UpdateUser(id primitive.ObjectID, set bson.M) (UpdateResult, error)
	DeleteUser(id primitive.ObjectID) (DeleteResult, error)
}

type ServiceStore interface {
	Services() ([]domain.LaundryService, error)
	UpdateService(id primitive.ObjectID, set bson.M) (UpdateResult, error)
	DeleteService(id primitive.ObjectID) (DeleteResult, error)
}

type CartStore interface {
	Carts() ([]domain.CartItem, error)
	CartsByEmail(email string) ([]domain.CartItem, error)
	SaveCart(item domain.CartItem) (InsertResult, error)
	UpdateCartStatus(id primitive.ObjectID, status domain.OrderStatus) (UpdateResult, error)
	DeleteCart(id primitive.ObjectID) (DeleteResult, error)
}

type ReviewStore interface {
	Reviews() ([]domain.Review, error)
	ReviewsByReviewer(name string) ([]domain.Review, error)
	SaveReview(review domain.Review) (InsertResult, error)
}
