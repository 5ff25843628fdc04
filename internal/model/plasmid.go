package model

import (
	"fmt"
	"strings"
	"time"
)

// Plasmid is the aggregate for a cloned plasmid: one primary row plus three
// value sets kept in auxiliary tables.
type Plasmid struct {
	ID              string `gorm:"column:id;primaryKey" json:"id"`
	CreatedBy       string `gorm:"column:createdBy" json:"createdBy"`
	Initials        string `gorm:"column:initials" json:"initials"`
	LabNotes        string `gorm:"column:labNotes" json:"labNotes"`
	Description     string `gorm:"column:description" json:"description"`
	BackbonePlasmid string `gorm:"column:backbonePlasmid" json:"backbonePlasmid"` // by id, deliberately not a foreign key
	TimeOfEntry     int64  `gorm:"column:timeOfEntry" json:"timeOfEntry"`
	TimeOfCreation  int64  `gorm:"column:timeOfCreation" json:"timeOfCreation"`
	GeneData        []byte `gorm:"column:geneData" json:"geneData"`
	Archived        bool   `gorm:"column:isArchived" json:"archived"`

	SelectionMarkers StringSet `gorm:"-" json:"selectionMarkers"`
	Features         StringSet `gorm:"-" json:"features"`
	ORFs             StringSet `gorm:"-" json:"orfs"`
}

func (*Plasmid) TableName() string { return "plasmids" }

func (p *Plasmid) TypeTag() string  { return TagPlasmid }
func (p *Plasmid) EntityID() string { return p.ID }

// AssignID derives the durable identifier from the creator initials and a
// number drawn from the global allocator. Immutable once set.
func (p *Plasmid) AssignID(num int64) {
	p.ID = fmt.Sprintf("%s%s%d", TagPlasmid, p.Initials, num)
}

// SanityCheck validates the plasmid before persistence. It touches no
// external state.
func (p *Plasmid) SanityCheck() error {
	if p.CreatedBy == "" || p.Initials == "" {
		return &ValidationError{Reason: "creator name and initials of plasmid have to be set"}
	}
	now := time.Now()
	if !validTimestamp(p.TimeOfCreation, now) {
		return &ValidationError{Reason: "time of creation value is not a valid timestamp"}
	}
	if !validTimestamp(p.TimeOfEntry, now) {
		return &ValidationError{Reason: "time of entry value is not a valid timestamp"}
	}
	return nil
}

// SearchMisc collects the auxiliary tokens that go into the misc column of
// the search row.
func (p *Plasmid) SearchMisc() string {
	tokens := append(append(append(StringSet{}, p.SelectionMarkers...), p.Features...), p.ORFs...)
	return strings.TrimSpace(strings.Join(tokens, " ") + " " + p.BackbonePlasmid)
}

// LabelText renders the printed label: optional host organism, id, selection
// markers and the creation date with initials.
func (p *Plasmid) LabelText(host string) string {
	var lines []string
	if host != "" {
		lines = append(lines, host)
	}
	lines = append(lines, p.ID)
	if len(p.SelectionMarkers) > 0 {
		lines = append(lines, strings.Join(p.SelectionMarkers, ", "))
	}
	lines = append(lines, labelDate(p.TimeOfCreation)+" | "+p.Initials)
	return strings.Join(lines, "\n")
}

// SelectionMarker is one auxiliary set row for a plasmid.
type SelectionMarker struct {
	PlasmidID string   `gorm:"column:plasmidID;uniqueIndex:uniq_plasmid_marker"`
	Marker    string   `gorm:"column:marker;uniqueIndex:uniq_plasmid_marker"`
	Plasmid   *Plasmid `gorm:"foreignKey:PlasmidID;constraint:OnDelete:CASCADE"`
}

func (*SelectionMarker) TableName() string { return "selectionMarkers" }

// PlasmidFeature is one auxiliary set row for a plasmid.
type PlasmidFeature struct {
	PlasmidID  string   `gorm:"column:plasmidID;uniqueIndex:uniq_plasmid_feature"`
	HasFeature string   `gorm:"column:hasFeature;uniqueIndex:uniq_plasmid_feature"`
	Plasmid    *Plasmid `gorm:"foreignKey:PlasmidID;constraint:OnDelete:CASCADE"`
}

func (*PlasmidFeature) TableName() string { return "plasmidFeatures" }

// PlasmidORF is one auxiliary set row for a plasmid.
type PlasmidORF struct {
	PlasmidID string   `gorm:"column:plasmidID;uniqueIndex:uniq_plasmid_orf"`
	HasORF    string   `gorm:"column:hasORF;uniqueIndex:uniq_plasmid_orf"`
	Plasmid   *Plasmid `gorm:"foreignKey:PlasmidID;constraint:OnDelete:CASCADE"`
}

func (*PlasmidORF) TableName() string { return "plasmidORFs" }
