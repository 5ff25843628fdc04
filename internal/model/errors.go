package model

import "errors"

// ValidationError reports malformed or incomplete entity data before any
// persistence is attempted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Constraint violations raised by the storage layer. Handlers map
// each of these to its own user-facing message, so they must stay
// distinguishable with errors.Is.
var (
	// ErrDuplicateID fires on a primary-key collision for an entity id.
	ErrDuplicateID = errors.New("identifier is not unique")

	// ErrSlotOccupied fires when a storage location already has an occupant.
	ErrSlotOccupied = errors.New("storage location is already occupied")

	// ErrDanglingRef fires when an entity references a plasmid, organism or
	// generic object that does not exist.
	ErrDanglingRef = errors.New("referenced object does not exist")
)

// ErrNotFound reports a mutation against an entity or slot that is absent.
// Plain reads signal absence with a nil result instead.
var ErrNotFound = errors.New("object does not exist")
