package service

import (
	"context"

	"clonestore/internal/model"
	"clonestore/internal/repo"
)

// StorageService orchestrates the slot registry. The one-occupant invariant
// is enforced twice: a pre-check here gives the friendly error, the primary
// key on the location column backs it up under concurrent writers.
type StorageService struct {
	slots    repo.StorageRepository
	plasmids repo.PlasmidRepository
}

func NewStorageService(slots repo.StorageRepository, plasmids repo.PlasmidRepository) *StorageService {
	return &StorageService{slots: slots, plasmids: plasmids}
}

// Occupy binds a plasmid and its host organism to a free location.
func (s *StorageService) Occupy(ctx context.Context, location, plasmidID, host string) error {
	if plasmidID == "" {
		return &model.ValidationError{Reason: "no entry set"}
	}
	if host == "" {
		return &model.ValidationError{Reason: "no host bacterium set"}
	}
	existing, err := s.slots.Lookup(ctx, location)
	if err != nil {
		return err
	}
	if existing != nil {
		return model.ErrSlotOccupied
	}
	p, err := s.plasmids.Get(ctx, plasmidID)
	if err != nil {
		return err
	}
	if p == nil {
		return model.ErrNotFound
	}
	return s.slots.Occupy(ctx, location, plasmidID, host)
}

// Vacate frees the location; freeing an empty slot succeeds.
func (s *StorageService) Vacate(ctx context.Context, location string) error {
	return s.slots.Vacate(ctx, location)
}

// Lookup returns the slot content or nil when the location is empty.
func (s *StorageService) Lookup(ctx context.Context, location string) (*model.StorageSlot, error) {
	return s.slots.Lookup(ctx, location)
}

// LocationsFor lists every slot bound to the given plasmid.
func (s *StorageService) LocationsFor(ctx context.Context, plasmidID string) ([]model.StorageSlot, error) {
	return s.slots.LocationsFor(ctx, plasmidID)
}
