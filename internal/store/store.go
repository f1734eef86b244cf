package store

import (
	"errors"
	"strings"
	"time"

	"github.com/diewo77/invoice-lite/internal/invoicing"
	"github.com/diewo77/invoice-lite/internal/models"
)

// ErrNotFound is returned when an operation names an invoice id that is not
// in the collection. Callers treat it as a cue to fall back to the list view.
var ErrNotFound = errors.New("invoice not found")

// Adapter is the durable key-value storage the store persists through.
// Implementations must swallow corrupt payloads: ReadInvoices yields an empty
// collection and ReadProfile the default profile instead of a parse error.
type Adapter interface {
	ReadInvoices() ([]models.Invoice, error)
	WriteInvoices(invs []models.Invoice) error
	ReadProfile() (models.BusinessProfile, error)
	WriteProfile(p models.BusinessProfile) error
	ClearAll() error
}

// Filter narrows List output. Status is "all", "paid" or "unpaid" (empty
// means all); Query matches case-insensitively against client name or id.
type Filter struct {
	Status string
	Query  string
}

// Store owns the in-memory invoice collection and the business profile and
// keeps them in sync with the adapter. Newest invoices sit at the front of
// the slice; every mutation persists before returning, so callers never see
// a committed change that isn't durable.
//
// The store is single-operator by design: no locking, one instance per app.
type Store struct {
	adapter  Adapter
	now      func() time.Time
	invoices []models.Invoice
	profile  models.BusinessProfile
}

// New creates a store over the given adapter. Call Reload before first use.
func New(a Adapter) *Store {
	return &Store{
		adapter: a,
		now:     time.Now,
		profile: models.DefaultBusinessProfile(),
	}
}

// Reload repopulates the collection and profile from the adapter. The
// adapter already degrades corrupt payloads to empty/default values, so a
// broken blob never takes the application down.
func (s *Store) Reload() error {
	invs, err := s.adapter.ReadInvoices()
	if err != nil {
		return err
	}
	profile, err := s.adapter.ReadProfile()
	if err != nil {
		return err
	}
	s.invoices = invs
	s.profile = profile.Normalized()
	return nil
}

// Persist writes the current collection through the adapter.
func (s *Store) Persist() error {
	return s.adapter.WriteInvoices(s.invoices)
}

// List returns invoices matching the filter, most recently created first.
func (s *Store) List(f Filter) []models.Invoice {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		if f.Status != "" && f.Status != "all" && inv.NormalizedStatus() != f.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(inv.ClientName), q) &&
			!strings.Contains(strings.ToLower(inv.ID), q) {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// Get returns the invoice with the given id or ErrNotFound.
func (s *Store) Get(id string) (models.Invoice, error) {
	if i := s.indexOf(id); i >= 0 {
		return s.invoices[i], nil
	}
	return models.Invoice{}, ErrNotFound
}

// Upsert validates the draft and commits it. Drafts without a known id become
// new invoices: they get a generated id, the profile's currency, unpaid
// status and are prepended to the collection. Drafts with a known id are
// merged into the existing record (see merge for precedence). Totals are
// recomputed here so the persisted snapshot always matches the items.
//
// No invalid invoice is ever persisted: validation failures return a
// *invoicing.ValidationError and leave the collection untouched.
func (s *Store) Upsert(draft models.Invoice) (models.Invoice, error) {
	draft.Items = filterBlank(draft.Items)
	if err := validate(draft); err != nil {
		return models.Invoice{}, err
	}
	draft.Totals = invoicing.ComputeTotals(draft.Items, draft.Discount, draft.TaxRate)

	now := s.now()
	ms := now.UnixMilli()
	idx := s.indexOf(draft.ID)
	if idx < 0 {
		inv := draft
		inv.ID = NewID(now)
		if inv.Date == "" {
			inv.Date = now.Format("2006-01-02")
		}
		if inv.Currency == "" {
			inv.Currency = s.profile.Currency
		}
		inv.Status = inv.NormalizedStatus()
		inv.CreatedAt = ms
		inv.UpdatedAt = ms
		s.invoices = append([]models.Invoice{inv}, s.invoices...)
		if err := s.Persist(); err != nil {
			return models.Invoice{}, err
		}
		return inv, nil
	}

	merged := merge(s.invoices[idx], draft)
	merged.UpdatedAt = ms
	s.invoices[idx] = merged
	if err := s.Persist(); err != nil {
		return models.Invoice{}, err
	}
	return merged, nil
}

// merge folds a draft into an existing record. Precedence: the draft wins for
// everything the editor exposes (dates, client fields, items, discount, tax
// rate, totals); the existing record keeps its identity fields (id,
// createdAt) and its status and currency, unless the draft sets them
// explicitly. Saving an edit therefore never silently un-pays an invoice or
// moves it to another currency.
func merge(existing, draft models.Invoice) models.Invoice {
	out := existing
	out.Date = draft.Date
	out.DueDate = draft.DueDate
	out.ClientName = draft.ClientName
	out.ClientPhone = draft.ClientPhone
	out.Items = draft.Items
	out.Discount = draft.Discount
	out.TaxRate = draft.TaxRate
	out.Totals = draft.Totals
	if draft.Status != "" {
		out.Status = draft.Status
	}
	if draft.Currency != "" {
		out.Currency = draft.Currency
	}
	out.Status = out.NormalizedStatus()
	return out
}

// Delete removes the invoice with the given id. Deleting an unknown id is a
// no-op and leaves the collection untouched.
func (s *Store) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	s.invoices = append(s.invoices[:idx], s.invoices[idx+1:]...)
	return s.Persist()
}

// ToggleStatus flips an invoice between paid and unpaid.
func (s *Store) ToggleStatus(id string) (models.Invoice, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Invoice{}, ErrNotFound
	}
	inv := s.invoices[idx]
	if inv.NormalizedStatus() == models.StatusPaid {
		inv.Status = models.StatusUnpaid
	} else {
		inv.Status = models.StatusPaid
	}
	inv.UpdatedAt = s.now().UnixMilli()
	s.invoices[idx] = inv
	if err := s.Persist(); err != nil {
		return models.Invoice{}, err
	}
	return inv, nil
}

// Profile returns the current business profile (always normalized).
func (s *Store) Profile() models.BusinessProfile {
	return s.profile
}

// SaveProfile normalizes and persists the business profile.
func (s *Store) SaveProfile(p models.BusinessProfile) (models.BusinessProfile, error) {
	p = p.Normalized()
	if err := s.adapter.WriteProfile(p); err != nil {
		return models.BusinessProfile{}, err
	}
	s.profile = p
	return p, nil
}

// Reset wipes all stored data. Invoices are gone for good; the profile falls
// back to its defaults on the next load, which Reset performs immediately.
func (s *Store) Reset() error {
	if err := s.adapter.ClearAll(); err != nil {
		return err
	}
	return s.Reload()
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, inv := range s.invoices {
		if inv.ID == id {
			return i
		}
	}
	return -1
}

func filterBlank(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, 0, len(items))
	for _, it := range items {
		if it.Blank() {
			continue
		}
		out = append(out, it)
	}
	return out
}

func validate(draft models.Invoice) error {
	if strings.TrimSpace(draft.ClientName) == "" {
		return invoicing.ErrClientNameRequired
	}
	if len(draft.Items) == 0 {
		return invoicing.ErrItemsRequired
	}
	return nil
}
