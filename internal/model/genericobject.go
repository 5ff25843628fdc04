package model

import (
	"fmt"
	"strings"
	"time"
)

// GenericObject is any physical inventory item that is neither a plasmid nor
// a microorganism. It always references exactly one other entity.
type GenericObject struct {
	ID              string  `gorm:"column:id;primaryKey" json:"id"`
	CreatedBy       string  `gorm:"column:createdBy" json:"createdBy"`
	Initials        string  `gorm:"column:initials" json:"initials"`
	LabNotes        string  `gorm:"column:labNotes" json:"labNotes"`
	Description     string  `gorm:"column:description" json:"description"`
	StorageLocation *string `gorm:"column:storageLocation;uniqueIndex:uniq_generic_location" json:"storageLocation"`
	TimeOfEntry     int64   `gorm:"column:timeOfEntry" json:"timeOfEntry"`
	TimeOfCreation  int64   `gorm:"column:timeOfCreation" json:"timeOfCreation"`
	Destroyed       bool    `gorm:"column:destroyed" json:"archived"`

	// Reference is the domain view; the three nullable columns below are its
	// persisted form so SQLite can enforce referential integrity per target
	// table.
	Reference `gorm:"-"`

	PlasmidRef  *string `gorm:"column:plasmidRef" json:"-"`
	OrganismRef *string `gorm:"column:organismRef" json:"-"`
	GenericRef  *string `gorm:"column:genericRef" json:"-"`

	PlasmidRecord  *Plasmid       `gorm:"foreignKey:PlasmidRef" json:"-"`
	OrganismRecord *Microorganism `gorm:"foreignKey:OrganismRef" json:"-"`
	GenericRecord  *GenericObject `gorm:"foreignKey:GenericRef" json:"-"`
}

func (*GenericObject) TableName() string { return "genericobjects" }

func (g *GenericObject) TypeTag() string  { return TagGeneric }
func (g *GenericObject) EntityID() string { return g.ID }

// AssignID derives the durable identifier from the creator initials and a
// number drawn from the global allocator.
func (g *GenericObject) AssignID(num int64) {
	g.ID = fmt.Sprintf("%s%s%d", TagGeneric, g.Initials, num)
}

// SanityCheck validates the generic object before persistence.
func (g *GenericObject) SanityCheck() error {
	if g.CreatedBy == "" || g.Initials == "" {
		return &ValidationError{Reason: "creator name and initials of generic object have to be set"}
	}
	if g.Description == "" {
		return &ValidationError{Reason: "generic objects cannot have empty descriptions"}
	}
	now := time.Now()
	if !validTimestamp(g.TimeOfCreation, now) {
		return &ValidationError{Reason: "time of creation value is not a valid timestamp"}
	}
	if !validTimestamp(g.TimeOfEntry, now) {
		return &ValidationError{Reason: "time of entry value is not a valid timestamp"}
	}
	if g.Location() == "" {
		return &ValidationError{Reason: "generic objects cannot have empty storage location"}
	}
	if !g.Reference.Valid() {
		return &ValidationError{Reason: "generic objects must reference exactly one existing object"}
	}
	return nil
}

// Location returns the storage location or "".
func (g *GenericObject) Location() string {
	if g.StorageLocation == nil {
		return ""
	}
	return *g.StorageLocation
}

// SpreadReference projects the tagged union onto the persisted reference
// columns.
func (g *GenericObject) SpreadReference() {
	g.PlasmidRef, g.OrganismRef, g.GenericRef = nil, nil, nil
	id := g.Reference.ID
	switch g.Reference.Kind {
	case RefPlasmid:
		g.PlasmidRef = &id
	case RefMicroorganism:
		g.OrganismRef = &id
	default:
		g.GenericRef = &id
	}
}

// CollectReference rebuilds the tagged union from the persisted columns.
func (g *GenericObject) CollectReference() {
	switch {
	case g.PlasmidRef != nil:
		g.Reference = Reference{Kind: RefPlasmid, ID: *g.PlasmidRef}
	case g.OrganismRef != nil:
		g.Reference = Reference{Kind: RefMicroorganism, ID: *g.OrganismRef}
	case g.GenericRef != nil:
		g.Reference = Reference{Kind: RefGeneric, ID: *g.GenericRef}
	}
}

// SearchMisc collects the tokens for the misc column of the search row.
func (g *GenericObject) SearchMisc() string {
	return strings.TrimSpace(g.Location() + " " + g.Reference.ID)
}

// LabelText renders the printed label.
func (g *GenericObject) LabelText(string) string {
	text := g.ID + "\n" + labelDate(g.TimeOfCreation) + " | " + g.Initials
	if g.Reference.ID != "" {
		text += "\nrelated: " + g.Reference.ID
	}
	return text
}
