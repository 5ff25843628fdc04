package service

import (
	"context"
	"time"

	"clonestore/internal/model"
	"clonestore/internal/repo"
)

// OrganismService wraps the microorganism repository.
type OrganismService struct {
	repo repo.MicroorganismRepository
}

func NewOrganismService(r repo.MicroorganismRepository) *OrganismService {
	return &OrganismService{repo: r}
}

// Create persists a new microorganism and returns its assigned id.
func (s *OrganismService) Create(ctx context.Context, m *model.Microorganism) (string, error) {
	if m.TimeOfEntry == 0 {
		m.TimeOfEntry = time.Now().Unix()
	}
	return s.repo.Insert(ctx, m)
}

// Get returns the microorganism or nil when absent.
func (s *OrganismService) Get(ctx context.Context, id string) (*model.Microorganism, error) {
	return s.repo.Get(ctx, id)
}

// Archive flags the organism as destroyed. Its storage location is left in
// place: organisms record their location on the row itself, not in the slot
// registry.
func (s *OrganismService) Archive(ctx context.Context, id string) error {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return model.ErrNotFound
	}
	return s.repo.Archive(ctx, id, true)
}

// Relocate moves the organism to a new storage location.
func (s *OrganismService) Relocate(ctx context.Context, id, newLocation string) error {
	if newLocation == "" {
		return &model.ValidationError{Reason: "new storage location not set"}
	}
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return model.ErrNotFound
	}
	return s.repo.UpdateStorageLocation(ctx, id, newLocation)
}
