package db

import (
	"context"

	"github.com/zbitech/zbi-db/pkg/domain"
)

type Interface interface {
	// Append records that an operation was requested against an owner.
	//
	// The new record is not completed and not successful; its expiry is
	// ActivityRetention after creation.
	Append(ctx context.Context, ownerId string, op domain.Operation) (domain.Activity, error)

	// Complete marks an activity finished. Completed and Success are set
	// together; a retry overwrites the previous outcome.
	//
	// Returns ErrMissing (via Missing) when no such activity exists.
	Complete(ctx context.Context, activityId string, success bool) (domain.Activity, error)

	// List returns the owner's activities, oldest first.
	List(ctx context.Context, ownerId string) ([]domain.Activity, error)

	// Expire removes activities whose expiry has passed, and reports
	// how many were removed.
	Expire(ctx context.Context) (int64, error)
}
