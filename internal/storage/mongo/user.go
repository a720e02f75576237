package mongo

import (
	"errors"
	"net/http"

	"github.com/washlava-dev/washlava/internal/domain"
	internal_errors "github.com/washlava-dev/washlava/internal/errors"
	"github.com/washlava-dev/washlava/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ storage.UserStore = (*Storage)(nil)

func (s *Storage) Users() ([]domain.User, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	cur, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeError(err)
	}
	return decodeAll[domain.User](ctx, cur)
}

func (s *Storage) UserByEmail(email string) (domain.User, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	var user domain.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
	}
	if err != nil {
		return domain.User{}, storeError(err)
	}
	return user, nil
}

// SaveUser inserts a new user document. Idempotency on email is handled by
// the registration handler, which probes UserByEmail first.
func (s *Storage) SaveUser(user domain.User) (storage.InsertResult, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return storage.InsertResult{}, storeError(err)
	}
	return storage.InsertResult{InsertedId: res.InsertedID}, nil
}

func (s *Storage) UpdateUser(id primitive.ObjectID, set bson.M) (storage.UpdateResult, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	res, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return storage.UpdateResult{}, storeError(err)
	}
	return storage.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (s *Storage) DeleteUser(id primitive.ObjectID) (storage.DeleteResult, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storage.DeleteResult{}, storeError(err)
	}
	return storage.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
