package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/washlava-dev/washlava/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
)

func (h *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.Services()
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, services)
}

// UpdateService applies an arbitrary field set to a service document.
// There is no create endpoint; services are seeded out of band.
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectId(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var fields map[string]interface{}
	if err := utils.Decode(r.Body, &fields); err != nil {
		utils.WriteError(w, err)
		return
	}
	delete(fields, "_id") // the id is immutable
	if len(fields) == 0 {
		utils.WriteError(w, badRequest("Nothing to update"))
		return
	}

	result, err := h.services.UpdateService(id, bson.M(fields))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, result)
}

func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectId(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	result, err := h.services.DeleteService(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, result)
}
