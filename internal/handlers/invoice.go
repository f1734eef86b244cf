package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/diewo77/invoice-lite/internal/httpx"
	"github.com/diewo77/invoice-lite/internal/invoicing"
	"github.com/diewo77/invoice-lite/internal/models"
	"github.com/diewo77/invoice-lite/internal/pdf"
	"github.com/diewo77/invoice-lite/internal/share"
	"github.com/diewo77/invoice-lite/internal/store"
	"github.com/diewo77/invoice-lite/internal/validation"
)

// InvoiceHandler exposes the store and editing session over JSON.
type InvoiceHandler struct {
	Store *store.Store
}

func NewInvoiceHandler(st *store.Store) *InvoiceHandler {
	return &InvoiceHandler{Store: st}
}

// draftReq mirrors the editor form: one invoice being composed. An empty id
// means a brand-new invoice.
type draftReq struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"`
	DueDate     string            `json:"dueDate"`
	ClientName  string            `json:"clientName"`
	ClientPhone string            `json:"clientPhone"`
	Items       []models.LineItem `json:"items"`
	Discount    float64           `json:"discount"`
	Tax         float64           `json:"tax"`
}

func (d draftReq) session() *invoicing.Session {
	s := &invoicing.Session{
		InvoiceID:   d.ID,
		Date:        d.Date,
		DueDate:     d.DueDate,
		ClientName:  d.ClientName,
		ClientPhone: d.ClientPhone,
		Items:       d.Items,
		Discount:    d.Discount,
		TaxRate:     d.Tax,
	}
	if len(s.Items) == 0 {
		s.Items = []models.LineItem{{}}
	}
	return s
}

// List: GET /invoices?status=all|paid|unpaid&q=...
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	f := store.Filter{
		Status: r.URL.Query().Get("status"),
		Query:  r.URL.Query().Get("q"),
	}
	if f.Status == "" {
		f.Status = "all"
	}
	invs := h.Store.List(f)
	httpx.JSON(w, http.StatusOK, map[string]any{"items": invs, "total": len(invs)})
}

// Save: POST /invoices – commits a draft, creating or updating by id.
func (h *InvoiceHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req draftReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.ValidDate("date", req.Date, v)
	validation.ValidDate("dueDate", req.DueDate, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}
	inv, err := req.session().Commit(h.Store)
	if err != nil {
		var verr *invoicing.ValidationError
		if errors.As(err, &verr) {
			// The violation value is shown to the user as-is.
			httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed",
				validation.Violations{verr.Field: verr.Message})
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_invoice", nil)
		return
	}
	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	httpx.JSON(w, status, inv)
}

// Preview: POST /invoices/preview – totals for an uncommitted draft. Junk
// numbers are coerced to zero, so the preview itself never fails.
func (h *InvoiceHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req draftReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	sess := req.session()
	amounts := make([]float64, len(sess.Items))
	for i, it := range sess.Items {
		amounts[i] = invoicing.LineAmount(it)
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"totals": sess.Totals(), "lineAmounts": amounts})
}

// Get: GET /invoices/{id}
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, err := h.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

// Delete: DELETE /invoices/{id} – deleting an unknown id is still a 204.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(chi.URLParam(r, "id")); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_invoice", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleStatus: POST /invoices/{id}/status – flips paid/unpaid.
func (h *InvoiceHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	inv, err := h.Store.ToggleStatus(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_invoice", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

// Share: GET /invoices/{id}/share – text summary plus WhatsApp deep link.
// Drafts that were never committed have no id to look up, so a miss means
// the user must save first.
func (h *InvoiceHandler) Share(w http.ResponseWriter, r *http.Request) {
	inv, err := h.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "save_required", nil)
		return
	}
	msg := share.Message(inv)
	httpx.JSON(w, http.StatusOK, map[string]string{
		"message": msg,
		"url":     share.WhatsAppURL(inv, msg),
	})
}

// PDF: GET /invoices/{id}/pdf
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	inv, err := h.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "save_required", nil)
		return
	}
	data, err := pdf.Render(inv, h.Store.Profile())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="invoice-`+inv.ID+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
