package invoicing

// ValidationError is a recoverable user-input failure. Message is shown to
// the user verbatim; the draft that caused it is never modified.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrClientNameRequired = &ValidationError{Field: "clientName", Message: "client name required"}
	ErrItemsRequired      = &ValidationError{Field: "items", Message: "at least one item required"}
)
