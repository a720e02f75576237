package handler

import (
	"net/http"

	internal_errors "github.com/washlava-dev/washlava/internal/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseObjectId validates the path id before any store call; malformed ids
// are a 400, not a store round-trip.
func parseObjectId(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, &internal_errors.ErrorWithStatusCode{Message: "Invalid id", StatusCode: http.StatusBadRequest}
	}
	return id, nil
}

func notFound(message string) error {
	return &internal_errors.ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func badRequest(message string) error {
	return &internal_errors.ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

func forbidden() error {
	return &internal_errors.ErrorWithStatusCode{Message: "Forbidden access", StatusCode: http.StatusForbidden}
}
