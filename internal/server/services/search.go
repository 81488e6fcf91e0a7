package services

import (
	"context"
	"database/sql"

	"github.com/ymstdo/userbase/internal/common"
	"github.com/ymstdo/userbase/internal/metrics"
	"github.com/ymstdo/userbase/internal/server/models"
	"github.com/ymstdo/userbase/internal/server/repositories/repomanager"
)

// DefaultPageSize is the page size callers pass when they have no opinion.
const DefaultPageSize = 50

// SearchService compiles an ordered keyword list into one ranked,
// paginated query against the users relation.
type SearchService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewSearchService constructs a SearchService.
func NewSearchService(db *sql.DB, m repomanager.RepositoryManager) *SearchService {
	return &SearchService{db: db, repomanager: m}
}

// Search returns users whose name matches any keyword, ranked by how many
// keywords matched (a row matching two keywords counts twice). Results are
// paginated with pageSize rows per page, page starting at 1. Non-positive
// page or pageSize is a caller contract violation. An empty keyword list
// yields an empty result without querying. Tie order within equal match
// counts is unspecified.
func (s *SearchService) Search(ctx context.Context, keywords []string, page, pageSize int) ([]*models.SearchResult, error) {
	if page <= 0 {
		return nil, common.NewValidationError("page", "must be positive")
	}
	if pageSize <= 0 {
		return nil, common.NewValidationError("page_size", "must be positive")
	}
	if len(keywords) == 0 {
		return []*models.SearchResult{}, nil
	}

	metrics.SearchesTotal.Inc()

	repo := s.repomanager.Users(s.db)
	return repo.Search(ctx, keywords, pageSize, pageSize*(page-1))
}
