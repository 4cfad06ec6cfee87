package db

import (
	"context"

	"github.com/zbitech/zbi-db/pkg/domain"
)

type Interface interface {
	// Set grants or replaces a user's capabilities on an owner.
	//
	// At most one record exists per (owner, user); setting again
	// overwrites the flags and keeps the record's id.
	Set(ctx context.Context, ownerId string, userId string, flags domain.PermissionFlags) (domain.Permission, error)

	// retrieve the user's permission record on an owner.
	//
	// Returns ErrMissing (via Missing) when the user holds no record there.
	Get(ctx context.Context, ownerId string, userId string) (domain.Permission, error)

	// List returns every permission record on the owner.
	List(ctx context.Context, ownerId string) ([]domain.Permission, error)

	// Remove revokes the user's record on the owner entirely.
	//
	// Returns ErrMissing (via Missing) when no record existed for the
	// (owner, user) pair.
	Remove(ctx context.Context, ownerId string, userId string) error
}
