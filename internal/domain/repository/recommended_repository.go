package repository

import "context"

// RecommendedRepository stores the per-user quick-select activity shortlist.
// ReplaceAll swaps the whole list in one transaction (delete then insert,
// duplicates absorbed by the unique constraint) and returns the stored list
// in insertion order.
type RecommendedRepository interface {
	List(ctx context.Context, userID int64) ([]string, error)
	ReplaceAll(ctx context.Context, userID int64, names []string) ([]string, error)
}
