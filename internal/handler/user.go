package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/washlava-dev/washlava/internal/domain"
	internal_errors "github.com/washlava-dev/washlava/internal/errors"
	mw "github.com/washlava-dev/washlava/internal/middleware"
	"github.com/washlava-dev/washlava/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
)

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.Users()
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, users)
}

type adminStatusResponse struct {
	Admin bool `json:"admin"`
}

// GetAdminStatus reports whether the given email belongs to an admin. A
// caller may only ask about their own token email.
func (h *Handler) GetAdminStatus(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	tokenEmail, ok := mw.EmailFromContext(r)
	if !ok || email != tokenEmail {
		utils.WriteError(w, forbidden())
		return
	}

	user, err := h.users.UserByEmail(email)
	if err != nil {
		// no record means not an admin, same as the missing-role case
		if internal_errors.StatusCode(err, 0) == http.StatusNotFound {
			utils.WriteJSON(w, adminStatusResponse{Admin: false})
			return
		}
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, adminStatusResponse{Admin: user.IsAdmin()})
}

type registerUserRequest struct {
	Email string `validate:"required" json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type registerExistsResponse struct {
	Message    string      `json:"message"`
	InsertedId interface{} `json:"insertedId"`
}

// RegisterUser is an idempotent open create: re-registering an existing
// email is a no-op answered with a null insertedId sentinel.
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var body registerUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	_, err := h.users.UserByEmail(body.Email)
	if err == nil {
		utils.WriteJSON(w, registerExistsResponse{Message: "User already exists", InsertedId: nil})
		return
	}
	if internal_errors.StatusCode(err, 0) != http.StatusNotFound {
		utils.WriteError(w, err)
		return
	}

	result, err := h.users.SaveUser(domain.User{Email: body.Email, Name: body.Name, Photo: body.Photo})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, result)
}

type updateUserRequest struct {
	Role   *domain.Role `json:"role"`
	Banned *bool        `json:"banned"`
}

// UpdateUser sets role and/or the ban flag on a user document.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectId(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body updateUserRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	set := bson.M{}
	if body.Role != nil {
		if !body.Role.IsValid() {
			utils.WriteError(w, badRequest("Invalid role"))
			return
		}
		set["role"] = *body.Role
	}
	if body.Banned != nil {
		set["banned"] = *body.Banned
	}
	if len(set) == 0 {
		utils.WriteError(w, badRequest("Nothing to update"))
		return
	}

	result, err := h.users.UpdateUser(id, set)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, result)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectId(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	result, err := h.users.DeleteUser(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, result)
}
