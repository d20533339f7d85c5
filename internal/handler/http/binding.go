package http

import (
	"net/http"

	"github.com/MKhiriev/anything-list/internal/service"
	"github.com/MKhiriev/anything-list/internal/utils"
	"github.com/MKhiriev/anything-list/models"
)

type bindingResponse struct {
	models.BindingState
	CanSyncWithCurrentAccount bool `json:"can_sync_with_current_account"`
	IsBoundAccountMismatch    bool `json:"is_bound_account_mismatch"`
}

func (h *Handler) getBinding(w http.ResponseWriter, r *http.Request) {
	state, err := h.services.BindingService.FetchBindingState(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getBinding", err)
		return
	}

	utils.WriteJSON(w, bindingResponse{
		BindingState:              state,
		CanSyncWithCurrentAccount: state.CanSyncWithCurrentAccount(),
		IsBoundAccountMismatch:    state.IsBoundAccountMismatch(),
	}, http.StatusOK)
}

func (h *Handler) previewSwitch(w http.ResponseWriter, r *http.Request) {
	preview, err := h.services.BindingService.PreviewSwitchToCurrentAccount(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.previewSwitch", err)
		return
	}

	utils.WriteJSON(w, preview, http.StatusOK)
}

// switchBinding refuses to bind while no account is signed in; otherwise it
// binds whatever account is current at this moment.
func (h *Handler) switchBinding(w http.ResponseWriter, r *http.Request) {
	h.switchMu.Lock()
	defer h.switchMu.Unlock()

	preview, err := h.services.BindingService.PreviewSwitchToCurrentAccount(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.switchBinding", err)
		return
	}
	if preview.CurrentAccountID == nil {
		writeError(w, r, "*Handler.switchBinding", service.ErrNoCurrentAccount)
		return
	}

	switched, err := h.services.BindingService.SwitchBindingToCurrentAccount(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.switchBinding", err)
		return
	}

	utils.WriteJSON(w, switched, http.StatusOK)
}
