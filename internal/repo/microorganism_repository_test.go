package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"clonestore/internal/model"
)

func TestMicroorganismRepository_InsertGetRoundTrip(t *testing.T) {
	db := newTestDB(t)
	plasmids := NewPlasmidRepository(db)
	organisms := NewMicroorganismRepository(db)
	ctx := context.Background()

	pid, err := plasmids.Insert(ctx, mkPlasmid("Ada Lovelace", "AL"))
	assert.NoError(t, err)

	m := mkOrganism("Grace Hopper", "GH")
	m.Plasmid = &pid
	loc := "freezer 2 box 4"
	m.StorageLocation = &loc
	m.Resistance = "amp"

	id, err := organisms.Insert(ctx, m)
	assert.NoError(t, err)
	assert.Equal(t, "mGH2", id)

	got, err := organisms.Get(ctx, id)
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, pid, got.PlasmidID())
		assert.Equal(t, loc, got.Location())
		assert.Equal(t, "E. coli DH5a", got.Organism)
		assert.False(t, got.Destroyed)
	}
}

func TestMicroorganismRepository_EmptyOptionalsStoredAsNull(t *testing.T) {
	db := newTestDB(t)
	organisms := NewMicroorganismRepository(db)
	ctx := context.Background()

	empty := ""
	m := mkOrganism("Ada Lovelace", "AL")
	m.Plasmid = &empty
	m.StorageLocation = &empty

	id, err := organisms.Insert(ctx, m)
	assert.NoError(t, err)

	got, err := organisms.Get(ctx, id)
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Nil(t, got.Plasmid)
		assert.Nil(t, got.StorageLocation)
	}
}

func TestMicroorganismRepository_DanglingPlasmidRejected(t *testing.T) {
	db := newTestDB(t)
	organisms := NewMicroorganismRepository(db)

	missing := "pXX99"
	m := mkOrganism("Ada Lovelace", "AL")
	m.Plasmid = &missing

	_, err := organisms.Insert(context.Background(), m)
	assert.ErrorIs(t, err, model.ErrDanglingRef)
}

func TestMicroorganismRepository_LocationConflictOnInsert(t *testing.T) {
	db := newTestDB(t)
	organisms := NewMicroorganismRepository(db)
	ctx := context.Background()

	loc := "fridge 1 shelf 3"
	first := mkOrganism("Ada Lovelace", "AL")
	first.StorageLocation = &loc
	firstID, err := organisms.Insert(ctx, first)
	assert.NoError(t, err)

	second := mkOrganism("Grace Hopper", "GH")
	loc2 := loc
	second.StorageLocation = &loc2
	_, err = organisms.Insert(ctx, second)
	assert.ErrorIs(t, err, model.ErrSlotOccupied)

	// first occupant is untouched
	got, err := organisms.Get(ctx, firstID)
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, loc, got.Location())
	}
}

func TestMicroorganismRepository_RelocateAndConflict(t *testing.T) {
	db := newTestDB(t)
	organisms := NewMicroorganismRepository(db)
	ctx := context.Background()

	locA := "rack A"
	locB := "rack B"
	a := mkOrganism("Ada Lovelace", "AL")
	a.StorageLocation = &locA
	aID, err := organisms.Insert(ctx, a)
	assert.NoError(t, err)

	b := mkOrganism("Grace Hopper", "GH")
	b.StorageLocation = &locB
	bID, err := organisms.Insert(ctx, b)
	assert.NoError(t, err)

	// moving onto an occupied spot fails, moving to a free one succeeds
	err = organisms.UpdateStorageLocation(ctx, aID, locB)
	assert.ErrorIs(t, err, model.ErrSlotOccupied)

	assert.NoError(t, organisms.UpdateStorageLocation(ctx, bID, "rack C"))
	got, err := organisms.Get(ctx, bID)
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, "rack C", got.Location())
	}
}

func TestMicroorganismRepository_ArchiveKeepsLocation(t *testing.T) {
	db := newTestDB(t)
	organisms := NewMicroorganismRepository(db)
	ctx := context.Background()

	loc := "freezer 4 box 1"
	m := mkOrganism("Ada Lovelace", "AL")
	m.StorageLocation = &loc
	id, err := organisms.Insert(ctx, m)
	assert.NoError(t, err)

	assert.NoError(t, organisms.Archive(ctx, id, true))

	got, err := organisms.Get(ctx, id)
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.True(t, got.Destroyed)
		assert.Equal(t, loc, got.Location())
	}
}
