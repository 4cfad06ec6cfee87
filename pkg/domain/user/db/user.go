package db

import (
	"context"

	"github.com/zbitech/zbi-db/pkg/domain"
)

// UserSpec is what a new account is registered from.
type UserSpec struct {
	Email    string
	Name     string
	Role     domain.Role
	Provider string
}

type Interface interface {
	// Register creates an account, active from the start.
	//
	// Returns ErrExists (via Conflict) when the email is taken.
	Register(ctx context.Context, spec UserSpec) (domain.User, error)

	// retrieve an account by id.
	//
	// Returns ErrMissing (via Missing) when no such account exists.
	Get(ctx context.Context, userId string) (domain.User, error)

	// retrieve an account by email.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// List returns every known account.
	List(ctx context.Context) ([]domain.User, error)

	// SetActive flips an account's activation.
	SetActive(ctx context.Context, userId string, active bool) error
}
