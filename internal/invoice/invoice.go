// Package invoice implements the validated-mutation pipeline for invoice
// records: form input normalization, schema validation with aggregated
// field errors, and create/update/delete persistence with uniform
// failure containment.
package invoice

import (
	"net/url"
)

// Status is the payment state of an invoice.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Form field names as submitted by the dashboard.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// Input carries the raw, untrusted field values of one form submission.
// Values may be blank, missing, or nonsensical; nothing here has been
// validated. An Input is consumed exactly once, producing either a
// Validated value or a set of field errors.
type Input struct {
	CustomerID string
	Amount     string
	Status     string
}

// FromForm extracts the invoice fields from a parsed form payload.
// All coercion happens later in Validate/Parse; this is the single
// place where the loose key/value payload is shaped into a value type.
func FromForm(form url.Values) Input {
	return Input{
		CustomerID: form.Get(FieldCustomerID),
		Amount:     form.Get(FieldAmount),
		Status:     form.Get(FieldStatus),
	}
}

// Validated is the strict shape an Input becomes after passing the full
// validation schema. The amount is held in integer cents so persistence
// never sees floating point.
type Validated struct {
	CustomerID  string
	AmountCents int64
	Status      Status
}

// Record is a durable invoice row as stored in PostgreSQL. ID and Date
// are fixed at creation; the remaining fields are mutable via Update.
type Record struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customerId"`
	AmountCents int64  `json:"amountCents"`
	Status      Status `json:"status"`
	Date        string `json:"date"` // ISO calendar date, set server-side at creation
}
