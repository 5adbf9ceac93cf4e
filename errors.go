package fitlog

import "errors"

// Sentinel errors for the engine's failure taxonomy. Callers discriminate
// with errors.Is.
var (
	// ErrValidation reports bad user input: an empty meal name,
	// non-positive calories, or non-positive biometrics. The operation did
	// not mutate any state.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound reports an operation on a meal id absent from the target
	// day. Callers should treat it as "already gone".
	ErrNotFound = errors.New("meal not found")

	// ErrStorage reports that the underlying store rejected a write. The
	// in-memory state was rolled back, so memory and storage stay
	// consistent.
	ErrStorage = errors.New("storage failure")
)
