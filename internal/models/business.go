package models

import "strings"

// Defaults applied when the business profile was never configured.
const (
	DefaultBusinessName = "Your Business"
	DefaultCurrency     = "PKR"
)

// BusinessProfile is the single per-installation business identity printed on
// invoices. There is exactly one; a reset wipes it and defaults repopulate.
type BusinessProfile struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Currency string `json:"currency"`
}

// DefaultBusinessProfile returns the profile used before any settings save.
func DefaultBusinessProfile() BusinessProfile {
	return BusinessProfile{Name: DefaultBusinessName, Currency: DefaultCurrency}
}

// Normalized trims free-text fields and substitutes defaults for an empty
// name or currency, so callers never see a half-empty profile.
func (p BusinessProfile) Normalized() BusinessProfile {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		p.Name = DefaultBusinessName
	}
	p.Phone = strings.TrimSpace(p.Phone)
	p.Address = strings.TrimSpace(p.Address)
	p.Currency = strings.TrimSpace(p.Currency)
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	return p
}
