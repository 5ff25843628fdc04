package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clonestore/internal/model"
)

// GenericObjectRepository persists generic inventory objects.
type GenericObjectRepository interface {
	Insert(ctx context.Context, g *model.GenericObject) (string, error)
	Get(ctx context.Context, id string) (*model.GenericObject, error)
	// Archive flips the destroyed flag; setting it also clears the object's
	// own storage location so the spot reads as unoccupied afterwards.
	Archive(ctx context.Context, id string, flag bool) error
	UpdateStorageLocation(ctx context.Context, id, newLocation string) error
}

type genericObjectRepo struct {
	db *gorm.DB
}

// NewGenericObjectRepository creates the generic object repository.
func NewGenericObjectRepository(db *gorm.DB) GenericObjectRepository {
	return &genericObjectRepo{db: db}
}

func (r *genericObjectRepo) Insert(ctx context.Context, g *model.GenericObject) (string, error) {
	if err := g.SanityCheck(); err != nil {
		return "", err
	}
	g.SpreadReference()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if g.ID == "" {
			num, err := nextIDNum(tx)
			if err != nil {
				return fmt.Errorf("allocate id: %w", err)
			}
			g.AssignID(num)
		}
		if err := tx.Omit(clause.Associations).Create(g).Error; err != nil {
			return err
		}
		return indexEntity(tx, g.ID, model.TypeGeneric, g.CreatedBy, g.Initials, g.LabNotes, g.Description, g.SearchMisc())
	})
	if err != nil {
		switch classifyConstraint(err) {
		case constraintPrimaryKey:
			return "", fmt.Errorf("insert generic object: %w", model.ErrDuplicateID)
		case constraintUnique:
			return "", fmt.Errorf("insert generic object: %w", model.ErrSlotOccupied)
		case constraintForeignKey:
			return "", fmt.Errorf("insert generic object: %w", model.ErrDanglingRef)
		}
		return "", err
	}
	return g.ID, nil
}

func (r *genericObjectRepo) Get(ctx context.Context, id string) (*model.GenericObject, error) {
	var g model.GenericObject
	err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	g.CollectReference()
	return &g, nil
}

func (r *genericObjectRepo) Archive(ctx context.Context, id string, flag bool) error {
	updates := map[string]any{"destroyed": flag}
	if flag {
		updates["storageLocation"] = nil
	}
	return r.db.WithContext(ctx).Model(&model.GenericObject{}).Where("id = ?", id).Updates(updates).Error
}

func (r *genericObjectRepo) UpdateStorageLocation(ctx context.Context, id, newLocation string) error {
	err := r.db.WithContext(ctx).Model(&model.GenericObject{}).Where("id = ?", id).Update("storageLocation", newLocation).Error
	if err != nil {
		if classifyConstraint(err) == constraintUnique {
			return fmt.Errorf("update generic object location: %w", model.ErrSlotOccupied)
		}
		return err
	}
	return nil
}
