package jsondoc

import "errors"

// Hard-failure sentinels for the mutation and serialization operations.
// A navigation failure is never an error: those calls return the original
// document unchanged. Callers compare against these with errors.Is.
var (
	// ErrEmptyDocument is returned when an operation needs a document but
	// the input is empty or whitespace-only.
	ErrEmptyDocument = errors.New("empty document")

	// ErrWrongType is returned when the addressed container has the wrong
	// shape for the operation, e.g. appending to an object or keying into
	// a scalar.
	ErrWrongType = errors.New("value has wrong type for operation")

	// ErrDeleteRoot is returned by Delete for the empty path; the document
	// root cannot be removed, only replaced via Update.
	ErrDeleteRoot = errors.New("cannot delete document root")
)
