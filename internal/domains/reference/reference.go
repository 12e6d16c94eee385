// Package reference keeps the reference lists of guests and bookings pointing at each other.
//
// A booking lists its guests and every guest lists its bookings. There is no transaction
// spanning both collections, so the services call a Synchronizer after persisting their own
// document to bring the counterparts in line. Failures part way through are reported but
// not rolled back.
package reference

//go:generate go run go.uber.org/mock/mockgen -source=./reference.go -destination=./mocks/reference_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stay/infras/otel"
	"stay/shared/constant"
	"stay/shared/failure"
	gModel "stay/shared/model"
	"stay/shared/validator"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Target is the counterpart collection whose reference lists are kept in sync.
type Target interface {
	Name() string
	Exist(ctx context.Context, id string) (bool, error)
	// References returns the reference list of the document with the given id and whether
	// that document exists.
	References(ctx context.Context, id string) (gModel.IDs, bool, error)
	SetReferences(ctx context.Context, id string, ids gModel.IDs) error
	NotFound(id string) error
}

type Synchronizer interface {
	// Validate deduplicates ids and checks that each one is well formed and exists.
	Validate(ctx context.Context, ids []string) (gModel.IDs, error)
	// AddReferenceTo appends ownerID to the reference list of every target.
	AddReferenceTo(ctx context.Context, ownerID string, targetIDs []string) error
	// RemoveReferenceFrom removes ownerID from the reference list of every target.
	RemoveReferenceFrom(ctx context.Context, ownerID string, targetIDs []string) error
}

type synchronizerImpl struct {
	target Target
	otel   otel.Otel
}

func New(target Target, otel otel.Otel) Synchronizer {
	return &synchronizerImpl{
		target: target,
		otel:   otel,
	}
}

func (s *synchronizerImpl) Validate(ctx context.Context, ids []string) (res gModel.IDs, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSyncScopeName, constant.OtelSyncScopeName+"."+s.target.Name()+".Validate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = gModel.IDs(ids).Unique()

	for _, id := range res {
		if !validator.IsIDValid(id) {
			return nil, failure.InvalidID(id) //nolint:wrapcheck
		}
	}

	found := make([]bool, len(res))

	var group errgroup.Group

	for idx, id := range res {
		group.Go(func() error {
			exist, err := s.target.Exist(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to look up %s %s: %w", s.target.Name(), id, err)
			}

			found[idx] = exist

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to validate references")

		return nil, err
	}

	for idx, id := range res {
		if !found[idx] {
			return nil, s.target.NotFound(id)
		}
	}

	return res, nil
}

func (s *synchronizerImpl) AddReferenceTo(ctx context.Context, ownerID string, targetIDs []string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSyncScopeName, constant.OtelSyncScopeName+"."+s.target.Name()+".AddReferenceTo")
	defer scope.End()

	err := s.apply(ctx, targetIDs, func(ids gModel.IDs) (gModel.IDs, bool) {
		return ids.With(ownerID)
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("owner", ownerID).Msg("failed to add references")

		return fmt.Errorf("failed to add references: %w", err)
	}

	return nil
}

func (s *synchronizerImpl) RemoveReferenceFrom(ctx context.Context, ownerID string, targetIDs []string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSyncScopeName, constant.OtelSyncScopeName+"."+s.target.Name()+".RemoveReferenceFrom")
	defer scope.End()

	err := s.apply(ctx, targetIDs, func(ids gModel.IDs) (gModel.IDs, bool) {
		return ids.Without(ownerID)
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("owner", ownerID).Msg("failed to remove references")

		return fmt.Errorf("failed to remove references: %w", err)
	}

	return nil
}

// apply runs fetch and update for each target concurrently. Siblings keep running when one
// fails and nothing is undone. Targets that no longer exist are skipped.
func (s *synchronizerImpl) apply(ctx context.Context, targetIDs []string, change func(gModel.IDs) (gModel.IDs, bool)) error {
	var group errgroup.Group

	for _, id := range gModel.IDs(targetIDs).Unique() {
		group.Go(func() error {
			ids, exist, err := s.target.References(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get %s %s: %w", s.target.Name(), id, err)
			}

			if !exist {
				log.Warn().Str(s.target.Name(), id).Msg("reference target no longer exists, skipping")

				return nil
			}

			updated, changed := change(ids)
			if !changed {
				return nil
			}

			if err = s.target.SetReferences(ctx, id, updated); err != nil {
				return fmt.Errorf("failed to update %s %s: %w", s.target.Name(), id, err)
			}

			return nil
		})
	}

	return group.Wait() //nolint:wrapcheck
}
