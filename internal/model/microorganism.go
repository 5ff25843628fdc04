package model

import (
	"fmt"
	"strings"
	"time"
)

// Microorganism is a stored organism, optionally carrying a plasmid.
type Microorganism struct {
	ID              string  `gorm:"column:id;primaryKey" json:"id"`
	CreatedBy       string  `gorm:"column:createdBy" json:"createdBy"`
	Initials        string  `gorm:"column:initials" json:"initials"`
	LabNotes        string  `gorm:"column:labNotes" json:"labNotes"`
	Organism        string  `gorm:"column:organism" json:"organism"`
	Resistance      string  `gorm:"column:resistance" json:"resistance"`
	Plasmid         *string `gorm:"column:plasmid" json:"plasmid"` // references plasmids.id, NULL when absent
	StorageLocation *string `gorm:"column:storageLocation;uniqueIndex:uniq_organism_location" json:"storageLocation"`
	TimeOfEntry     int64   `gorm:"column:timeOfEntry" json:"timeOfEntry"`
	TimeOfCreation  int64   `gorm:"column:timeOfCreation" json:"timeOfCreation"`
	Destroyed       bool    `gorm:"column:destroyed" json:"archived"`

	PlasmidRecord *Plasmid `gorm:"foreignKey:Plasmid" json:"-"`
}

func (*Microorganism) TableName() string { return "microorganisms" }

func (m *Microorganism) TypeTag() string  { return TagMicroorganism }
func (m *Microorganism) EntityID() string { return m.ID }

// AssignID derives the durable identifier from the creator initials and a
// number drawn from the global allocator.
func (m *Microorganism) AssignID(num int64) {
	m.ID = fmt.Sprintf("%s%s%d", TagMicroorganism, m.Initials, num)
}

// SanityCheck validates the microorganism before persistence.
func (m *Microorganism) SanityCheck() error {
	if m.CreatedBy == "" || m.Initials == "" {
		return &ValidationError{Reason: "creator name and initials of microorganism have to be set"}
	}
	now := time.Now()
	if !validTimestamp(m.TimeOfCreation, now) {
		return &ValidationError{Reason: "time of creation value is not a valid timestamp"}
	}
	if !validTimestamp(m.TimeOfEntry, now) {
		return &ValidationError{Reason: "time of entry value is not a valid timestamp"}
	}
	return nil
}

// PlasmidID returns the referenced plasmid id or "".
func (m *Microorganism) PlasmidID() string {
	if m.Plasmid == nil {
		return ""
	}
	return *m.Plasmid
}

// Location returns the storage location or "".
func (m *Microorganism) Location() string {
	if m.StorageLocation == nil {
		return ""
	}
	return *m.StorageLocation
}

// SearchMisc collects the tokens for the misc column of the search row.
func (m *Microorganism) SearchMisc() string {
	return strings.TrimSpace(m.Location() + " " + m.Resistance)
}

// SearchDescription is the description column of the search row; organisms
// have no free-text description, so species and plasmid stand in.
func (m *Microorganism) SearchDescription() string {
	return strings.TrimSpace(m.Organism + " " + m.PlasmidID())
}

// LabelText renders the printed label.
func (m *Microorganism) LabelText(string) string {
	lines := []string{m.Organism, m.PlasmidID(), m.ID, labelDate(m.TimeOfCreation) + " | " + m.Initials}
	return strings.Join(lines, "\n")
}
