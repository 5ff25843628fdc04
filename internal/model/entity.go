package model

import (
	"strings"
	"time"
)

// Entity type tags used in ids, deep links and the search index.
const (
	TagPlasmid       = "p"
	TagMicroorganism = "m"
	TagGeneric       = "g"
)

// Search index type names per entity.
const (
	TypePlasmid       = "plasmid"
	TypeMicroorganism = "microorganism"
	TypeGeneric       = "genericobject"
)

// Entity is the common surface the printing flow needs from any inventory
// record.
type Entity interface {
	TypeTag() string
	EntityID() string
	// LabelText renders the physical label block. host carries optional
	// host-organism info and is only meaningful for plasmids.
	LabelText(host string) string
}

// DeepLink substitutes an entity's type tag and id into a frontend URL
// template containing [typeid] and [objectid] placeholders.
func DeepLink(template, typeTag, id string) string {
	link := strings.ReplaceAll(template, "[typeid]", typeTag)
	return strings.ReplaceAll(link, "[objectid]", id)
}

// Timestamps may not lie more than a day ahead of the wall clock.
const timestampSlack = 24 * time.Hour

func validTimestamp(ts int64, now time.Time) bool {
	return ts >= 0 && ts <= now.Add(timestampSlack).Unix()
}

func labelDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006/01/02")
}
