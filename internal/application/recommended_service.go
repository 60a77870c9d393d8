package application

import (
	"context"
	"strings"

	repo "github.com/hppyapp/hppy-backend/internal/domain/repository"
)

type RecommendedService struct {
	Recommended repo.RecommendedRepository
}

func NewRecommendedService(recommended repo.RecommendedRepository) *RecommendedService {
	return &RecommendedService{Recommended: recommended}
}

// List returns the user's quick-select shortlist in insertion order.
func (s *RecommendedService) List(ctx context.Context, userID int64) ([]string, error) {
	return s.Recommended.List(ctx, userID)
}

// Replace swaps the whole shortlist. Entries are trimmed, blanks dropped,
// and duplicates collapsed; the returned list is re-read from storage so
// callers see post-dedup truth.
func (s *RecommendedService) Replace(ctx context.Context, userID int64, names []string) ([]string, error) {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			cleaned = append(cleaned, n)
		}
	}
	return s.Recommended.ReplaceAll(ctx, userID, cleaned)
}
