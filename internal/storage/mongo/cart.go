package mongo

import (
	"github.com/washlava-dev/washlava/internal/domain"
	"github.com/washlava-dev/washlava/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ storage.CartStore = (*Storage)(nil)

func (s *Storage) Carts() ([]domain.CartItem, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	cur, err := s.carts.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeError(err)
	}
	return decodeAll[domain.CartItem](ctx, cur)
}

func (s *Storage) CartsByEmail(email string) ([]domain.CartItem, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	cur, err := s.carts.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, storeError(err)
	}
	return decodeAll[domain.CartItem](ctx, cur)
}

func (s *Storage) SaveCart(item domain.CartItem) (storage.InsertResult, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	if item.Status == "" {
		item.Status = domain.StatusPending
	}
	res, err := s.carts.InsertOne(ctx, item)
	if err != nil {
		return storage.InsertResult{}, storeError(err)
	}
	return storage.InsertResult{InsertedId: res.InsertedID}, nil
}

func (s *Storage) UpdateCartStatus(id primitive.ObjectID, status domain.OrderStatus) (storage.UpdateResult, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	res, err := s.carts.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return storage.UpdateResult{}, storeError(err)
	}
	return storage.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (s *Storage) DeleteCart(id primitive.ObjectID) (storage.DeleteResult, error) {
	ctx, cancel := s.queryCtx()
	defer cancel()

	res, err := s.carts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storage.DeleteResult{}, storeError(err)
	}
	return storage.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
