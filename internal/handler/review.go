package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/washlava-dev/washlava/internal/domain"
	"github.com/washlava-dev/washlava/internal/utils"
)

type createReviewRequest struct {
	ReviewerName string  `validate:"required" json:"reviewerName"`
	Rating       float64 `json:"rating"`
	Content      string  `json:"content"`
}

// CreateReview is an open write; nothing beyond shape is trusted.
func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var body createReviewRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	result, err := h.reviews.SaveReview(domain.Review{
		ReviewerName: body.ReviewerName,
		Rating:       body.Rating,
		Content:      body.Content,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, result)
}

func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.Reviews()
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, reviews)
}

func (h *Handler) GetReviewsByReviewer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "reviewerName")

	reviews, err := h.reviews.ReviewsByReviewer(name)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, reviews)
}
