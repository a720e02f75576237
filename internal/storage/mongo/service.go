package mongo

import (
	"github.com/washlava-dev/washlava/internal/domain"
	"github.com/washlava-dev/washlava/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ storage.ServiceStore = (*Storage)(nil)

func (s *Storage) Services() ([]domain.LaundryService, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	cur, err := s.services.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeError(err)
	}
	return decodeAll[domain.LaundryService](ctx, cur)
}

// UpdateService sets exactly the supplied fields. Callers strip _id before
// passing the set.
func (s *Storage) UpdateService(id primitive.ObjectID, set bson.M) (storage.UpdateResult, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	res, err := s.services.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return storage.UpdateResult{}, storeError(err)
	}
	return storage.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (s *Storage) DeleteService(id primitive.ObjectID) (storage.DeleteResult, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	res, err := s.services.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storage.DeleteResult{}, storeError(err)
	}
	return storage.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
