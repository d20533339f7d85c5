package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/anything-list/internal/service"
	"github.com/MKhiriev/anything-list/internal/utils"
)

func (h *Handler) listCollections(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.services.CollectionService.List(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listCollections", err)
		return
	}

	utils.WriteJSON(w, overviews, http.StatusOK)
}

func (h *Handler) deleteCollection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.services.CollectionService.Delete(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteCollection", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CollectionService.ClearAll(r.Context()); err != nil {
		writeError(w, r, "*Handler.clearAll", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkConsistency(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.ConsistencyService.Check(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.checkConsistency", err)
		return
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(report.String()))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) listLibrary(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, service.TemplateLibrary(), http.StatusOK)
}

type createdResponse struct {
	CollectionID string `json:"collection_id"`
}

func (h *Handler) createFromLibrary(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, r, "*Handler.createFromLibrary", service.ErrTemplateNotFound)
		return
	}

	id, err := h.services.CollectionService.CreateFromLibrary(r.Context(), index)
	if err != nil {
		writeError(w, r, "*Handler.createFromLibrary", err)
		return
	}

	utils.WriteJSON(w, createdResponse{CollectionID: id}, http.StatusCreated)
}
