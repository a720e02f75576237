package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/washlava-dev/washlava/internal/domain"
	"github.com/washlava-dev/washlava/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetServicesHandler(t *testing.T) {
	h := &Handler{}

	router := chi.NewRouter()
	router.Get("/services", h.GetServices)

	t.Run("successful", func(t *testing.T) {
		h.services = &MockServiceStore{
			MockServices: func() ([]domain.LaundryService, error) {
				return []domain.LaundryService{{Name: "Wash & Fold", Price: 9.5}}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/services", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Wash & Fold")
	})

	t.Run("store error stays generic", func(t *testing.T) {
		h.services = &MockServiceStore{
			MockServices: func() ([]domain.LaundryService, error) {
				return nil, errors.New("connection reset by mongod at 10.0.0.3")
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/services", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "mongod")
		assert.JSONEq(t, `{"message": "Internal Server Error"}`, rr.Body.String())
	})
}

func TestUpdateServiceHandler(t *testing.T) {
	h := &Handler{}

	router := chi.NewRouter()
	router.Patch("/services/{id}", h.UpdateService)

	id := primitive.NewObjectID()

	t.Run("applies supplied fields and strips _id", func(t *testing.T) {
		h.services = &MockServiceStore{
			MockUpdateService: func(gotId primitive.ObjectID, set bson.M) (storage.UpdateResult, error) {
				assert.Equal(t, id, gotId)
				assert.NotContains(t, set, "_id")
				assert.Equal(t, 12.0, set["price"])
				return storage.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
			},
		}

		body := `{"_id": "ignored", "price": 12.0}`
		req := httptest.NewRequest(http.MethodPatch, "/services/"+id.Hex(), bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"matchedCount": 1, "modifiedCount": 1}`, rr.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		h.services = &MockServiceStore{}
		req := httptest.NewRequest(http.MethodPatch, "/services/nope", bytes.NewBufferString(`{"price": 1}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteServiceHandler(t *testing.T) {
	h := &Handler{}

	router := chi.NewRouter()
	router.Delete("/services/{id}", h.DeleteService)

	t.Run("successful", func(t *testing.T) {
		h.services = &MockServiceStore{
			MockDeleteService: func(id primitive.ObjectID) (storage.DeleteResult, error) {
				return storage.DeleteResult{DeletedCount: 1}, nil
			},
		}

		req := httptest.NewRequest(http.MethodDelete, "/services/"+primitive.NewObjectID().Hex(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("malformed id rejected before store call", func(t *testing.T) {
		called := false
		h.services = &MockServiceStore{
			MockDeleteService: func(id primitive.ObjectID) (storage.DeleteResult, error) {
				called = true
				return storage.DeleteResult{}, nil
			},
		}

		req := httptest.NewRequest(http.MethodDelete, "/services/not-hex", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, called)
	})
}
