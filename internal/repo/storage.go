package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clonestore/internal/model"
)

// StorageRepository is the slot registry: at most one occupant per physical
// location, enforced by the primary key on the location column. It does not
// validate that the occupying plasmid exists beyond the foreign key; the
// orchestrating service pre-checks existence for a friendlier error.
type StorageRepository interface {
	Occupy(ctx context.Context, location, plasmidID, host string) error
	// Vacate deletes the slot row. Vacating an empty location is a no-op
	// that still succeeds; only a failed delete surfaces as an error.
	Vacate(ctx context.Context, location string) error
	Lookup(ctx context.Context, location string) (*model.StorageSlot, error)
	LocationsFor(ctx context.Context, plasmidID string) ([]model.StorageSlot, error)
}

type storageRepo struct {
	db *gorm.DB
}

// NewStorageRepository creates the slot registry.
func NewStorageRepository(db *gorm.DB) StorageRepository {
	return &storageRepo{db: db}
}

func (r *storageRepo) Occupy(ctx context.Context, location, plasmidID, host string) error {
	slot := model.StorageSlot{Location: location, PlasmidID: plasmidID, Host: host}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&slot).Error
	if err != nil {
		switch classifyConstraint(err) {
		case constraintPrimaryKey, constraintUnique:
			return fmt.Errorf("occupy %s: %w", location, model.ErrSlotOccupied)
		case constraintForeignKey:
			return fmt.Errorf("occupy %s: %w", location, model.ErrDanglingRef)
		}
		return err
	}
	return nil
}

func (r *storageRepo) Vacate(ctx context.Context, location string) error {
	return r.db.WithContext(ctx).Where("location = ?", location).Delete(&model.StorageSlot{}).Error
}

func (r *storageRepo) Lookup(ctx context.Context, location string) (*model.StorageSlot, error) {
	var slot model.StorageSlot
	err := r.db.WithContext(ctx).First(&slot, "location = ?", location).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *storageRepo) LocationsFor(ctx context.Context, plasmidID string) ([]model.StorageSlot, error) {
	slots := []model.StorageSlot{}
	err := r.db.WithContext(ctx).Where("plasmidID = ?", plasmidID).Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}
