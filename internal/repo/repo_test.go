package repo

import (
	"fmt"
	"strings"
	"testing"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"clonestore/internal/model"
)

// newTestDB opens a private in-memory database with the full schema,
// including the search projection. Foreign keys are enforced like in
// production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func mkPlasmid(creator, initials string) *model.Plasmid {
	now := time.Now().Unix()
	return &model.Plasmid{
		CreatedBy:      creator,
		Initials:       initials,
		Description:    "expression vector",
		TimeOfEntry:    now,
		TimeOfCreation: now,
	}
}

func mkOrganism(creator, initials string) *model.Microorganism {
	now := time.Now().Unix()
	return &model.Microorganism{
		CreatedBy:      creator,
		Initials:       initials,
		Organism:       "E. coli DH5a",
		TimeOfEntry:    now,
		TimeOfCreation: now,
	}
}

func mkGeneric(creator, initials, location string, ref model.Reference) *model.GenericObject {
	now := time.Now().Unix()
	return &model.GenericObject{
		CreatedBy:       creator,
		Initials:        initials,
		Description:     "antibody aliquot",
		StorageLocation: &location,
		TimeOfEntry:     now,
		TimeOfCreation:  now,
		Reference:       ref,
	}
}
