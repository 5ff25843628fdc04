package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clonestore/internal/model"
)

// PlasmidRepository persists plasmid aggregates. Get returns nil without an
// error when no plasmid matches, so callers can tell "absent" from a storage
// failure.
type PlasmidRepository interface {
	// Insert validates the plasmid, assigns an id if it does not carry one
	// and writes the primary row, the auxiliary set rows, the search row and
	// the allocator increment as one atomic unit.
	Insert(ctx context.Context, p *model.Plasmid) (string, error)
	Get(ctx context.Context, id string) (*model.Plasmid, error)
	// Archive flips the archived flag. Setting it also frees every storage
	// slot the plasmid occupies: an archived plasmid vacates its physical
	// slots.
	Archive(ctx context.Context, id string, flag bool) error
}

type plasmidRepo struct {
	db *gorm.DB
}

// NewPlasmidRepository creates the plasmid repository.
func NewPlasmidRepository(db *gorm.DB) PlasmidRepository {
	return &plasmidRepo{db: db}
}

func (r *plasmidRepo) Insert(ctx context.Context, p *model.Plasmid) (string, error) {
	if err := p.SanityCheck(); err != nil {
		return "", err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if p.ID == "" {
			num, err := nextIDNum(tx)
			if err != nil {
				return fmt.Errorf("allocate id: %w", err)
			}
			p.AssignID(num)
		}
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return err
		}
		for _, marker := range p.SelectionMarkers {
			row := model.SelectionMarker{PlasmidID: p.ID, Marker: marker}
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return err
			}
		}
		for _, feature := range p.Features {
			row := model.PlasmidFeature{PlasmidID: p.ID, HasFeature: feature}
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return err
			}
		}
		for _, orf := range p.ORFs {
			row := model.PlasmidORF{PlasmidID: p.ID, HasORF: orf}
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return err
			}
		}
		return indexEntity(tx, p.ID, model.TypePlasmid, p.CreatedBy, p.Initials, p.LabNotes, p.Description, p.SearchMisc())
	})
	if err != nil {
		switch classifyConstraint(err) {
		case constraintPrimaryKey, constraintUnique:
			return "", fmt.Errorf("insert plasmid: %w", model.ErrDuplicateID)
		case constraintForeignKey:
			return "", fmt.Errorf("insert plasmid: %w", model.ErrDanglingRef)
		}
		return "", err
	}
	return p.ID, nil
}

func (r *plasmidRepo) Get(ctx context.Context, id string) (*model.Plasmid, error) {
	var p model.Plasmid
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	var markers, features, orfs []string
	if err := db.Model(&model.SelectionMarker{}).Where("plasmidID = ?", id).Pluck("marker", &markers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.PlasmidFeature{}).Where("plasmidID = ?", id).Pluck("hasFeature", &features).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.PlasmidORF{}).Where("plasmidID = ?", id).Pluck("hasORF", &orfs).Error; err != nil {
		return nil, err
	}
	p.SelectionMarkers = model.StringSet(markers)
	p.Features = model.StringSet(features)
	p.ORFs = model.StringSet(orfs)
	return &p, nil
}

func (r *plasmidRepo) Archive(ctx context.Context, id string, flag bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if flag {
			if err := tx.Where("plasmidID = ?", id).Delete(&model.StorageSlot{}).Error; err != nil {
				return fmt.Errorf("free storage slots: %w", err)
			}
		}
		return tx.Model(&model.Plasmid{}).Where("id = ?", id).Update("isArchived", flag).Error
	})
}
