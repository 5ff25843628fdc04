package service

import (
	"context"
	"time"

	"clonestore/internal/model"
	"clonestore/internal/repo"
)

// PlasmidService wraps the plasmid repository with entry-time defaulting and
// existence checks for mutations.
type PlasmidService struct {
	repo repo.PlasmidRepository
}

func NewPlasmidService(r repo.PlasmidRepository) *PlasmidService {
	return &PlasmidService{repo: r}
}

// Create persists a new plasmid and returns its assigned id.
func (s *PlasmidService) Create(ctx context.Context, p *model.Plasmid) (string, error) {
	if p.TimeOfEntry == 0 {
		p.TimeOfEntry = time.Now().Unix()
	}
	return s.repo.Insert(ctx, p)
}

// Get returns the plasmid or nil when absent.
func (s *PlasmidService) Get(ctx context.Context, id string) (*model.Plasmid, error) {
	return s.repo.Get(ctx, id)
}

// Archive flags the plasmid as archived and frees its storage slots.
func (s *PlasmidService) Archive(ctx context.Context, id string) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return model.ErrNotFound
	}
	return s.repo.Archive(ctx, id, true)
}
