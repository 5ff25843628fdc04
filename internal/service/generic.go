package service

import (
	"context"
	"time"

	"clonestore/internal/model"
	"clonestore/internal/repo"
)

// GenericService wraps the generic object repository.
type GenericService struct {
	repo repo.GenericObjectRepository
}

func NewGenericService(r repo.GenericObjectRepository) *GenericService {
	return &GenericService{repo: r}
}

// Create persists a new generic object and returns its assigned id.
func (s *GenericService) Create(ctx context.Context, g *model.GenericObject) (string, error) {
	if g.TimeOfEntry == 0 {
		g.TimeOfEntry = time.Now().Unix()
	}
	return s.repo.Insert(ctx, g)
}

// Get returns the generic object or nil when absent.
func (s *GenericService) Get(ctx context.Context, id string) (*model.GenericObject, error) {
	return s.repo.Get(ctx, id)
}

// Archive flags the object as destroyed and clears its storage location.
func (s *GenericService) Archive(ctx context.Context, id string) error {
	g, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if g == nil {
		return model.ErrNotFound
	}
	return s.repo.Archive(ctx, id, true)
}

// Relocate moves the object to a new storage location.
func (s *GenericService) Relocate(ctx context.Context, id, newLocation string) error {
	if newLocation == "" {
		return &model.ValidationError{Reason: "new storage location not set"}
	}
	g, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if g == nil {
		return model.ErrNotFound
	}
	return s.repo.UpdateStorageLocation(ctx, id, newLocation)
}
