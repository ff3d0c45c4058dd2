package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/justine-135/invoice-dashboard/internal/logging"
)

// ListPath is the logical path of the invoice listing page. Mutations
// signal it stale so the next read recomputes it.
const ListPath = "/dashboard/invoices"

// Executor runs one parameterized statement against the relational
// store. Implementations either complete or return an opaque execution
// error; no retries or transactions are assumed here.
type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) error
}

// Invalidator marks the cached rendering of a logical path stale. With
// navigate set, the client is additionally steered to that path once
// the current operation completes.
type Invalidator interface {
	Invalidate(path string, navigate bool)
}

const (
	insertInvoiceSQL = `INSERT INTO invoices (id, customer_id, amount, status, date) VALUES ($1, $2, $3, $4, $5)`
	updateInvoiceSQL = `UPDATE invoices SET customer_id = $2, amount = $3, status = $4 WHERE id = $1`
	deleteInvoiceSQL = `DELETE FROM invoices WHERE id = $1`
)

// Service orchestrates invoice mutations: validation, persistence, and
// the post-effect invalidation signal. Both collaborators are injected
// so tests can substitute fakes without process-wide setup.
type Service struct {
	store Executor
	cache Invalidator
}

// NewService creates a Service backed by the given statement executor
// and invalidation signal.
func NewService(store Executor, cache Invalidator) *Service {
	return &Service{store: store, cache: cache}
}

// Create validates raw input and inserts a new invoice with a fresh id
// and the server's current date. A validation failure returns the field
// errors verbatim; a store failure is contained and collapsed to an
// opaque message. On success the listing path is invalidated with
// navigation and the zero Result is returned.
func (s *Service) Create(ctx context.Context, in Input) Result {
	if errs := Validate(in); errs != nil {
		return fieldFailure(errs, MsgMissingFieldsCreate)
	}

	v, err := in.Parse()
	if err != nil {
		logging.FromContext(ctx).Error("create invoice: input passed validation but failed parse", "error", err)
		return storeFailure()
	}

	id := uuid.NewString()
	date := time.Now().Format("2006-01-02")
	if err := s.store.Exec(ctx, insertInvoiceSQL, id, v.CustomerID, v.AmountCents, v.Status, date); err != nil {
		logging.FromContext(ctx).Error("create invoice: insert failed", "error", err)
		return storeFailure()
	}

	s.cache.Invalidate(ListPath, true)
	return Result{}
}

// Update validates raw input and rewrites the mutable columns of the
// invoice matched by id; date and id stay untouched. The id is trusted
// caller input and no existence check is made, so updating a missing id
// is a silent no-op rather than an error.
func (s *Service) Update(ctx context.Context, id string, in Input) Result {
	if errs := Validate(in); errs != nil {
		return fieldFailure(errs, MsgMissingFieldsUpdate)
	}

	v, err := in.Parse()
	if err != nil {
		logging.FromContext(ctx).Error("update invoice: input passed validation but failed parse", "id", id, "error", err)
		return storeFailure()
	}

	if err := s.store.Exec(ctx, updateInvoiceSQL, id, v.CustomerID, v.AmountCents, v.Status); err != nil {
		logging.FromContext(ctx).Error("update invoice: update failed", "id", id, "error", err)
		return storeFailure()
	}

	s.cache.Invalidate(ListPath, true)
	return Result{}
}

// Delete removes the invoice matched by id. There is no validation
// phase. Success invalidates the listing path without navigation and
// returns an explicit confirmation message, since the caller renders
// inline feedback instead of navigating.
func (s *Service) Delete(ctx context.Context, id string) Result {
	if err := s.store.Exec(ctx, deleteInvoiceSQL, id); err != nil {
		logging.FromContext(ctx).Error("delete invoice: delete failed", "id", id, "error", err)
		return storeFailure()
	}

	s.cache.Invalidate(ListPath, false)
	return Result{Message: MsgDeletedInvoice}
}
