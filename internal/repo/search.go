package repo

import (
	"context"

	"gorm.io/gorm"

	"clonestore/internal/model"
)

// SearchMode scopes a full-text query to one column of the projection.
type SearchMode string

const (
	SearchByID          SearchMode = "id"
	SearchByCreator     SearchMode = "creator"
	SearchByDescription SearchMode = "description"
	SearchAny           SearchMode = "any"
)

// indexEntity writes the denormalized search row inside the same transaction
// as the entity's primary row. The projection is write-once: archival and
// relocation do not refresh it.
func indexEntity(tx *gorm.DB, id, typ, createdBy, initials, labNotes, description, misc string) error {
	return tx.Exec(
		`INSERT INTO search (id, type, createdBy, initials, labNotes, description, misc) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, typ, createdBy, initials, labNotes, description, misc,
	).Error
}

// SearchRepository queries the full-text projection. Results are ranked by
// the index, never read back as source of truth.
type SearchRepository interface {
	Query(ctx context.Context, mode SearchMode, term string) ([]model.SearchResult, error)
}

type searchRepo struct {
	db *gorm.DB
}

// NewSearchRepository creates the FTS-backed search repository.
func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepo{db: db}
}

func (r *searchRepo) Query(ctx context.Context, mode SearchMode, term string) ([]model.SearchResult, error) {
	const columns = `id, type, createdBy AS created_by, description`
	var query string
	switch mode {
	case SearchByID:
		query = `SELECT ` + columns + ` FROM search WHERE id MATCH ? ORDER BY rank`
	case SearchByCreator:
		query = `SELECT ` + columns + ` FROM search WHERE createdBy MATCH ? ORDER BY rank`
	case SearchByDescription:
		query = `SELECT ` + columns + ` FROM search WHERE description MATCH ? ORDER BY rank`
	case SearchAny:
		query = `SELECT ` + columns + ` FROM search WHERE search MATCH ? ORDER BY rank`
	default:
		return nil, &model.ValidationError{Reason: "invalid search mode"}
	}

	results := []model.SearchResult{}
	if err := r.db.WithContext(ctx).Raw(query, term).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
