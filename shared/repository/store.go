package repository

import (
	"context"
	"stay/shared/dto"
)

// Store is the persistence contract shared by the SQL and document backends.
// Get returns the zero value of T when nothing matches.
type Store[T any] interface {
	Insert(ctx context.Context, model T) error
	Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error)
	GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error)
	Exist(ctx context.Context, filter dto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter dto.FilterGroup) (int, error)
	EstimatedCount(ctx context.Context) (int, error)
	Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error
	Delete(ctx context.Context, filter dto.FilterGroup) error
}

var (
	_ Store[struct{}] = (*Repository[struct{}])(nil)
	_ Store[struct{}] = (*Document[struct{}])(nil)
)
