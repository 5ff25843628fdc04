package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clonestore/internal/model"
)

// MicroorganismRepository persists microorganism records.
type MicroorganismRepository interface {
	Insert(ctx context.Context, m *model.Microorganism) (string, error)
	Get(ctx context.Context, id string) (*model.Microorganism, error)
	Archive(ctx context.Context, id string, flag bool) error
	// UpdateStorageLocation relocates the organism; the unique constraint on
	// the location column rejects occupied targets.
	UpdateStorageLocation(ctx context.Context, id, newLocation string) error
}

type microorganismRepo struct {
	db *gorm.DB
}

// NewMicroorganismRepository creates the microorganism repository.
func NewMicroorganismRepository(db *gorm.DB) MicroorganismRepository {
	return &microorganismRepo{db: db}
}

func (r *microorganismRepo) Insert(ctx context.Context, m *model.Microorganism) (string, error) {
	if err := m.SanityCheck(); err != nil {
		return "", err
	}
	// Empty strings from the wire mean "absent" for nullable columns; NULL
	// keeps the foreign key and the location uniqueness out of play.
	if m.Plasmid != nil && *m.Plasmid == "" {
		m.Plasmid = nil
	}
	if m.StorageLocation != nil && *m.StorageLocation == "" {
		m.StorageLocation = nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.ID == "" {
			num, err := nextIDNum(tx)
			if err != nil {
				return fmt.Errorf("allocate id: %w", err)
			}
			m.AssignID(num)
		}
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return err
		}
		return indexEntity(tx, m.ID, model.TypeMicroorganism, m.CreatedBy, m.Initials, m.LabNotes, m.SearchDescription(), m.SearchMisc())
	})
	if err != nil {
		switch classifyConstraint(err) {
		case constraintPrimaryKey:
			return "", fmt.Errorf("insert microorganism: %w", model.ErrDuplicateID)
		case constraintUnique:
			return "", fmt.Errorf("insert microorganism: %w", model.ErrSlotOccupied)
		case constraintForeignKey:
			return "", fmt.Errorf("insert microorganism: %w", model.ErrDanglingRef)
		}
		return "", err
	}
	return m.ID, nil
}

func (r *microorganismRepo) Get(ctx context.Context, id string) (*model.Microorganism, error) {
	var m model.Microorganism
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *microorganismRepo) Archive(ctx context.Context, id string, flag bool) error {
	return r.db.WithContext(ctx).Model(&model.Microorganism{}).Where("id = ?", id).Update("destroyed", flag).Error
}

func (r *microorganismRepo) UpdateStorageLocation(ctx context.Context, id, newLocation string) error {
	err := r.db.WithContext(ctx).Model(&model.Microorganism{}).Where("id = ?", id).Update("storageLocation", newLocation).Error
	if err != nil {
		if classifyConstraint(err) == constraintUnique {
			return fmt.Errorf("update microorganism location: %w", model.ErrSlotOccupied)
		}
		return err
	}
	return nil
}
