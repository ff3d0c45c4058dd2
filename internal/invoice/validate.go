package invoice

// validate.go applies the invoice field schema to raw form input.
//
// All field checks run independently and their errors aggregate, so a
// submission with several bad fields reports all of them at once rather
// than stopping at the first failure.

import (
	"fmt"
	"math"
	"strings"
)

// FieldErrors maps a form field name to the ordered messages it failed with.
// A field may fail more than one rule.
type FieldErrors map[string][]string

// fieldSpec describes one validated form field: where its value comes
// from, the predicate it must satisfy, and the message shown when it
// does not.
type fieldSpec struct {
	name    string
	value   func(Input) string
	valid   func(string) bool
	message string
}

var invoiceFields = []fieldSpec{
	{
		name:    FieldCustomerID,
		value:   func(in Input) string { return in.CustomerID },
		valid:   func(raw string) bool { return strings.TrimSpace(raw) != "" },
		message: "Please select a customer.",
	},
	{
		name:    FieldAmount,
		value:   func(in Input) string { return in.Amount },
		valid:   validAmount,
		message: "Please enter an amount greater than $0.",
	},
	{
		name:    FieldStatus,
		value:   func(in Input) string { return in.Status },
		valid:   validStatus,
		message: "Please select an invoice status.",
	},
}

// Validate checks raw input against the invoice field schema and returns
// every violation found, keyed by field name. A nil result means the
// input is well formed and Parse is expected to succeed.
func Validate(in Input) FieldErrors {
	var errs FieldErrors
	for _, f := range invoiceFields {
		if !f.valid(f.value(in)) {
			if errs == nil {
				errs = FieldErrors{}
			}
			errs[f.name] = append(errs[f.name], f.message)
		}
	}
	return errs
}

// Parse converts raw input into its validated shape. Callers run
// Validate first; a Parse failure afterwards is a broken contract, not
// user feedback, and is reported as an error.
func (in Input) Parse() (Validated, error) {
	customer := strings.TrimSpace(in.CustomerID)
	if customer == "" {
		return Validated{}, fmt.Errorf("parse invoice input: customerId is empty")
	}

	cents, ok := parseCents(in.Amount)
	if !ok || cents <= 0 {
		return Validated{}, fmt.Errorf("parse invoice input: amount %q is not a positive number", in.Amount)
	}

	if !validStatus(in.Status) {
		return Validated{}, fmt.Errorf("parse invoice input: status %q is not one of %q/%q", in.Status, StatusPending, StatusPaid)
	}

	return Validated{
		CustomerID:  customer,
		AmountCents: cents,
		Status:      Status(in.Status),
	}, nil
}

// validStatus requires an exact, case-sensitive match against the
// enumerated statuses.
func validStatus(raw string) bool {
	return raw == string(StatusPending) || raw == string(StatusPaid)
}

func validAmount(raw string) bool {
	cents, ok := parseCents(raw)
	return ok && cents > 0
}

// parseCents converts a decimal amount string to integer cents without
// going through floating point, so "45.5" becomes exactly 4550. Digits
// past the second fraction place round half-up.
func parseCents(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, false
	}

	var whole int64
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return 0, false
		}
		if whole > (math.MaxInt64-int64(r-'0'))/10 {
			return 0, false
		}
		whole = whole*10 + int64(r-'0')
	}
	if whole > math.MaxInt64/100 {
		return 0, false
	}

	cents := whole * 100
	for i, r := range fracPart {
		if r < '0' || r > '9' {
			return 0, false
		}
		switch i {
		case 0:
			cents += int64(r-'0') * 10
		case 1:
			cents += int64(r - '0')
		case 2:
			if r >= '5' {
				cents++
			}
		}
	}

	if neg {
		cents = -cents
	}
	return cents, true
}
