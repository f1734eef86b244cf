package handlers

import (
	"net/http"

	"github.com/diewo77/invoice-lite/internal/httpx"
	"github.com/diewo77/invoice-lite/internal/models"
	"github.com/diewo77/invoice-lite/internal/store"
)

// SettingsHandler manages the single business profile and the full reset.
type SettingsHandler struct {
	Store *store.Store
}

func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{Store: st}
}

// Get: GET /settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.Store.Profile())
}

// Update: PUT /settings – empty name or currency fall back to defaults
// rather than being rejected.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p models.BusinessProfile
	if err := httpx.Decode(r, &p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	saved, err := h.Store.SaveProfile(p)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_settings", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

// Reset: POST /reset – wipes all invoices and settings; defaults repopulate.
func (h *SettingsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_reset", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
