package invoice

// User-facing outcome messages. Validation failures name the operation;
// persistence failures collapse to one opaque message that never leaks
// storage detail.
const (
	MsgMissingFieldsCreate = "Missing Fields. Failed to Create Invoice."
	MsgMissingFieldsUpdate = "Missing Fields. Failed to Update Invoice."
	MsgSomethingWentWrong  = "Something went wrong"
	MsgDeletedInvoice      = "Deleted Invoice."
)

// Result is the uniform shape reported back to form callers for both
// validation failures and persistence failures. Validation failures
// carry per-field messages plus a summary; persistence failures carry
// only the summary. The zero value signals success: a Result with
// Message set and no raised error is the one recoverable failure
// channel callers must handle.
type Result struct {
	Errors  FieldErrors `json:"errors,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK reports whether the mutation succeeded.
func (r Result) OK() bool {
	return r.Message == "" && len(r.Errors) == 0
}

// fieldFailure builds the Result for an input that failed the schema.
func fieldFailure(errs FieldErrors, message string) Result {
	return Result{Errors: errs, Message: message}
}

// storeFailure is the Result for any persistence-layer error. The
// original error is logged by the caller, never surfaced here.
func storeFailure() Result {
	return Result{Message: MsgSomethingWentWrong}
}
