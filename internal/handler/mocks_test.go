package handler

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/washlava-dev/washlava/internal/domain"
	mw "github.com/washlava-dev/washlava/internal/middleware"
	"github.com/washlava-dev/washlava/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserStore struct {
	MockUsers       func() ([]domain.User, error)
	MockUserByEmail func(email string) (domain.User, error)
	MockSaveUser    func(user domain.User) (storage.InsertResult, error)
	MockUpdateUser  func(id primitive.ObjectID, set bson.M) (storage.UpdateResult, error)
	MockDeleteUser  func(id primitive.ObjectID) (storage.DeleteResult, error)
}

func (m *MockUserStore) Users() ([]domain.User, error) {
	if m.MockUsers != nil {
		return m.MockUsers()
	}
	return nil, nil
}

func (m *MockUserStore) UserByEmail(email string) (domain.User, error) {
	if m.MockUserByEmail != nil {
		return m.MockUserByEmail(email)
	}
	return domain.User{}, nil
}

func (m *MockUserStore) SaveUser(user domain.User) (storage.InsertResult, error) {
	if m.MockSaveUser != nil {
		return m.MockSaveUser(user)
	}
	return storage.InsertResult{}, nil
}

func (m *MockUserStore) UpdateUser(id primitive.ObjectID, set bson.M) (storage.UpdateResult, error) {
	if m.MockUpdateUser != nil {
		return m.MockUpdateUser(id, set)
	}
	return storage.UpdateResult{}, nil
}

func (m *MockUserStore) DeleteUser(id primitive.ObjectID) (storage.DeleteResult, error) {
	if m.MockDeleteUser != nil {
		return m.MockDeleteUser(id)
	}
	return storage.DeleteResult{}, nil
}

type MockServiceStore struct {
	MockServices      func() ([]domain.LaundryService, error)
	MockUpdateService func(id primitive.ObjectID, set bson.M) (storage.UpdateResult, error)
	MockDeleteService func(id primitive.ObjectID) (storage.DeleteResult, error)
}

func (m *MockServiceStore) Services() ([]domain.LaundryService, error) {
	if m.MockServices != nil {
		return m.MockServices()
	}
	return nil, nil
}

func (m *MockServiceStore) UpdateService(id primitive.ObjectID, set bson.M) (storage.UpdateResult, error) {
	if m.MockUpdateService != nil {
		return m.MockUpdateService(id, set)
	}
	return storage.UpdateResult{}, nil
}

func (m *MockServiceStore) DeleteService(id primitive.ObjectID) (storage.DeleteResult, error) {
	if m.MockDeleteService != nil {
		return m.MockDeleteService(id)
	}
	return storage.DeleteResult{}, nil
}

type MockCartStore struct {
	MockCarts            func() ([]domain.CartItem, error)
	MockCartsByEmail     func(email string) ([]domain.CartItem, error)
	MockSaveCart         func(item domain.CartItem) (storage.InsertResult, error)
	MockUpdateCartStatus func(id primitive.ObjectID, status domain.OrderStatus) (storage.UpdateResult, error)
	MockDeleteCart       func(id primitive.ObjectID) (storage.DeleteResult, error)
}

func (m *MockCartStore) Carts() ([]domain.CartItem, error) {
	if m.MockCarts != nil {
		return m.MockCarts()
	}
	return nil, nil
}

func (m *MockCartStore) CartsByEmail(email string) ([]domain.CartItem, error) {
	if m.MockCartsByEmail != nil {
		return m.MockCartsByEmail(email)
	}
	return nil, nil
}

func (m *MockCartStore) SaveCart(item domain.CartItem) (storage.InsertResult, error) {
	if m.MockSaveCart != nil {
		return m.MockSaveCart(item)
	}
	return storage.InsertResult{}, nil
}

func (m *MockCartStore) UpdateCartStatus(id primitive.ObjectID, status domain.OrderStatus) (storage.UpdateResult, error) {
	if m.MockUpdateCartStatus != nil {
		return m.MockUpdateCartStatus(id, status)
	}
	return storage.UpdateResult{}, nil
}

func (m *MockCartStore) DeleteCart(id primitive.ObjectID) (storage.DeleteResult, error) {
	if m.MockDeleteCart != nil {
		return m.MockDeleteCart(id)
	}
	return storage.DeleteResult{}, nil
}

type MockReviewStore struct {
	MockReviews           func() ([]domain.Review, error)
	MockReviewsByReviewer func(name string) ([]domain.Review, error)
	MockSaveReview        func(review domain.Review) (storage.InsertResult, error)
}

func (m *MockReviewStore) Reviews() ([]domain.Review, error) {
	if m.MockReviews != nil {
		return m.MockReviews()
	}
	return nil, nil
}

func (m *MockReviewStore) ReviewsByReviewer(name string) ([]domain.Review, error) {
	if m.MockReviewsByReviewer != nil {
		return m.MockReviewsByReviewer(name)
	}
	return nil, nil
}

func (m *MockReviewStore) SaveReview(review domain.Review) (storage.InsertResult, error) {
	if m.MockSaveReview != nil {
		return m.MockSaveReview(review)
	}
	return storage.InsertResult{}, nil
}

// withClaims attaches verified-token claims the way VerifyToken would.
func withClaims(r *http.Request, email string) *http.Request {
	claims := jwt.MapClaims{"email": email}
	return r.WithContext(context.WithValue(r.Context(), mw.ClaimsKey, claims))
}
