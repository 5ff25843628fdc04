package model

// RefKind names the entity type a generic object points at.
type RefKind string

const (
	RefPlasmid       RefKind = "plasmid"
	RefMicroorganism RefKind = "microorganism"
	RefGeneric       RefKind = "generic"
)

// Reference is the tagged union behind a generic object's single polymorphic
// reference slot. Exactly one target kind applies at a time, which makes the
// "exactly one reference populated" rule structural instead of a runtime
// check over three nullable fields.
type Reference struct {
	Kind RefKind `json:"referenceType"`
	ID   string  `json:"referenceID"`
}

// Valid reports whether the union is populated with a known kind.
func (r Reference) Valid() bool {
	switch r.Kind {
	case RefPlasmid, RefMicroorganism, RefGeneric:
		return r.ID != ""
	}
	return false
}
