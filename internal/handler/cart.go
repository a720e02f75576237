package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/washlava-dev/washlava/internal/domain"
	internal_errors "github.com/washlava-dev/washlava/internal/errors"
	mw "github.com/washlava-dev/washlava/internal/middleware"
	"github.com/washlava-dev/washlava/internal/utils"
)

// GetCarts serves both the owner and the admin view: an admin with no email
// filter sees every cart, everyone else only carts matching their own token
// email.
func (h *Handler) GetCarts(w http.ResponseWriter, r *http.Request) {
	tokenEmail, ok := mw.EmailFromContext(r)
	if !ok {
		utils.WriteError(w, &internal_errors.ErrorWithStatusCode{Message: "Unauthorized access", StatusCode: http.StatusUnauthorized})
		return
	}

	queryEmail := r.URL.Query().Get("email")
	if queryEmail == tokenEmail && queryEmail != "" {
		carts, err := h.carts.CartsByEmail(queryEmail)
		if err != nil {
			utils.WriteError(w, err)
			return
		}
		utils.WriteJSON(w, carts)
		return
	}

	// Asking for someone else's carts, or for all of them, needs the
	// admin role.
	if !h.isAdmin(tokenEmail) {
		if queryEmail == "" {
			carts, err := h.carts.CartsByEmail(tokenEmail)
			if err != nil {
				utils.WriteError(w, err)
				return
			}
			utils.WriteJSON(w, carts)
			return
		}
		utils.WriteError(w, forbidden())
		return
	}

	var carts []domain.CartItem
	var err error
	if queryEmail == "" {
		carts, err = h.carts.Carts()
	} else {
		carts, err = h.carts.CartsByEmail(queryEmail)
	}
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, carts)
}

func (h *Handler) isAdmin(email string) bool {
	user, err := h.users.UserByEmail(email)
	return err == nil && user.IsAdmin()
}

type createCartRequest struct {
	Email       string  `validate:"required" json:"email"`
	ServiceId   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
}

func (h *Handler) CreateCart(w http.ResponseWriter, r *http.Request) {
	var body createCartRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	result, err := h.carts.SaveCart(domain.CartItem{
		Email:       body.Email,
		ServiceId:   body.ServiceId,
		ServiceName: body.ServiceName,
		Price:       body.Price,
		Status:      domain.StatusPending,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, result)
}

type updateCartStatusRequest struct {
	Status domain.OrderStatus `validate:"required" json:"status"`
}

// UpdateCartStatus sets the order status. Only membership in the
// enumerated set is checked; transition legality is not.
func (h *Handler) UpdateCartStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectId(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body updateCartStatusRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}
	if !body.Status.IsValid() {
		utils.WriteError(w, badRequest("Invalid status"))
		return
	}

	result, err := h.carts.UpdateCartStatus(id, body.Status)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if result.MatchedCount == 0 {
		utils.WriteError(w, notFound("Cart not found"))
		return
	}
	utils.WriteJSON(w, result)
}

func (h *Handler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectId(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	result, err := h.carts.DeleteCart(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if result.DeletedCount == 0 {
		utils.WriteError(w, notFound("Cart not found"))
		return
	}
	utils.WriteJSON(w, result)
}
