package http

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/anything-list/internal/codec"
	"github.com/MKhiriev/anything-list/internal/service"
	"github.com/MKhiriev/anything-list/internal/utils"
)

// maxDocumentSize bounds uploaded documents.
const maxDocumentSize = 32 << 20

func readDocument(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrCodec, err)
	}
	return data, nil
}

// requestFormat picks YAML when asked for by query or content type.
func requestFormat(r *http.Request) codec.Format {
	if strings.EqualFold(r.URL.Query().Get("format"), "yaml") ||
		strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		return codec.FormatYAML
	}
	return codec.FormatJSON
}

func (h *Handler) importTemplate(w http.ResponseWriter, r *http.Request) {
	data, err := readDocument(w, r)
	if err != nil {
		writeError(w, r, "*Handler.importTemplate", err)
		return
	}

	result, err := h.services.ImportService.ImportTemplate(r.Context(), data, requestFormat(r))
	if err != nil {
		writeError(w, r, "*Handler.importTemplate", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) importSnapshot(w http.ResponseWriter, r *http.Request) {
	data, err := readDocument(w, r)
	if err != nil {
		writeError(w, r, "*Handler.importSnapshot", err)
		return
	}

	result, err := h.services.ImportService.ImportSnapshot(r.Context(), data)
	if err != nil {
		writeError(w, r, "*Handler.importSnapshot", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) restoreBackup(w http.ResponseWriter, r *http.Request) {
	data, err := readDocument(w, r)
	if err != nil {
		writeError(w, r, "*Handler.restoreBackup", err)
		return
	}

	result, err := h.services.ImportService.RestoreBackup(r.Context(), data)
	if err != nil {
		writeError(w, r, "*Handler.restoreBackup", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) exportBackup(w http.ResponseWriter, r *http.Request) {
	doc, err := h.services.ExportService.ExportBackup(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.exportBackup", err)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) exportTemplate(w http.ResponseWriter, r *http.Request) {
	doc, err := h.services.ExportService.ExportTemplate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.exportTemplate", err)
		return
	}

	if requestFormat(r) == codec.FormatYAML {
		data, err := codec.EncodeAs(doc, codec.FormatYAML)
		if err != nil {
			writeError(w, r, "*Handler.exportTemplate", fmt.Errorf("%w: %w", service.ErrCodec, err))
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) exportSnapshot(w http.ResponseWriter, r *http.Request) {
	doc, err := h.services.ExportService.ExportSnapshot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.exportSnapshot", err)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}
