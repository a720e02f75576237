package handler

import (
	"net/http"

	"github.com/washlava-dev/washlava/internal/utils"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// IssueToken signs the client-supplied payload into a time-limited token.
// The payload shape is not validated; there is no server-side session.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := utils.Decode(r.Body, &payload); err != nil {
		utils.WriteError(w, err)
		return
	}

	token, err := h.jwt.Issue(payload)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, tokenResponse{Token: token})
}
