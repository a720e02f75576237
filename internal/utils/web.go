package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/washlava-dev/washlava/internal/errors"
	"github.com/washlava-dev/washlava/internal/logger"
)

type errorResponse struct {
	Message string `json:"message"`
}

// WriteError writes the JSON error body {"message": ...}. The status comes
// from the error when it is an ErrorWithStatusCode, 500 otherwise, and
// plain errors never leak their text to the caller.
func WriteError(w http.ResponseWriter, err error) {
	message := "Internal Server Error"
	status := http.StatusInternalServerError
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		message = e.Message
		status = e.StatusCode
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(errorResponse{Message: message}); encErr != nil {
		logger.Log.Error("writing error response", "error", encErr)
	}
}

func WriteJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("encoding response", "error", err)
	}
}

// DecodeValidate decodes a JSON body and checks validator tags.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// Decode decodes a JSON body without validation, for endpoints whose
// payload shape is deliberately unconstrained.
func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}
