package service

import (
	"context"

	"clonestore/internal/model"
	"clonestore/internal/repo"
)

// SearchService validates queries and maps the public mode names onto the
// index scopes.
type SearchService struct {
	repo repo.SearchRepository
}

func NewSearchService(r repo.SearchRepository) *SearchService {
	return &SearchService{repo: r}
}

var searchModes = map[string]repo.SearchMode{
	"id":          repo.SearchByID,
	"creator":     repo.SearchByCreator,
	"description": repo.SearchByDescription,
	"any":         repo.SearchAny,
}

// Query runs a ranked full-text search in the given mode.
func (s *SearchService) Query(ctx context.Context, mode, term string) ([]model.SearchResult, error) {
	if term == "" {
		return nil, &model.ValidationError{Reason: "no search query given"}
	}
	m, ok := searchModes[mode]
	if !ok {
		return nil, &model.ValidationError{Reason: "invalid search mode"}
	}
	return s.repo.Query(ctx, m, term)
}
