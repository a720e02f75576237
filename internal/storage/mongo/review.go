package mongo

import (
	"github.com/washlava-dev/washlava/internal/domain"
	"github.com/washlava-dev/washlava/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
)

var _ storage.ReviewStore = (*Storage)(nil)

func (s *Storage) Reviews() ([]domain.Review, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	cur, err := s.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeError(err)
	}
	return decodeAll[domain.Review](ctx, cur)
}

func (s *Storage) ReviewsByReviewer(name string) ([]domain.Review, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	cur, err := s.reviews.Find(ctx, bson.M{"reviewerName": name})
	if err != nil {
		return nil, storeError(err)
	}
	return decodeAll[domain.Review](ctx, cur)
}

func (s *Storage) SaveReview(review domain.Review) (storage.InsertResult, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	res, err := s.reviews.InsertOne(ctx, review)
	if err != nil {
		return storage.InsertResult{}, storeError(err)
	}
	return storage.InsertResult{InsertedId: res.InsertedID}, nil
}
