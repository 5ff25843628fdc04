package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clonestore/internal/model"
)

// PrinterRepository holds the singleton printer registration.
type PrinterRepository interface {
	// Setup replaces any existing registration with p.
	Setup(ctx context.Context, p *model.Printer) error
	// Get returns the current registration or nil when no printer is set up.
	Get(ctx context.Context) (*model.Printer, error)
}

type printerRepo struct {
	db *gorm.DB
}

// NewPrinterRepository creates the printer registration repository.
func NewPrinterRepository(db *gorm.DB) PrinterRepository {
	return &printerRepo{db: db}
}

func (r *printerRepo) Setup(ctx context.Context, p *model.Printer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Printer{}).Error; err != nil {
			return err
		}
		return tx.Create(p).Error
	})
}

func (r *printerRepo) Get(ctx context.Context) (*model.Printer, error) {
	var p model.Printer
	err := r.db.WithContext(ctx).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
