package db

import (
	"context"

	"github.com/zbitech/zbi-db/pkg/domain"
)

// ProjectSpec is what a new project is created from.
//
// Name and Owner are immutable once the project exists.
type ProjectSpec struct {
	Name        string
	Owner       string
	Blockchain  string
	Network     domain.NetworkKind
	Description string
}

type Interface interface {
	// create a new project.
	//
	// The new project starts with status "new" and state "creating".
	//
	// Returns
	//
	// - domain.Project: the created project.
	//
	// - error: ErrExists (via Conflict) when a project with the same name exists.
	Create(ctx context.Context, spec ProjectSpec) (domain.Project, error)

	// retrieve a project by id.
	//
	// Returns ErrMissing (via Missing) when no such project exists.
	Get(ctx context.Context, projectId string) (domain.Project, error)

	// Check reports whether a project with the id exists,
	// without loading the record. Used by route guards.
	Check(ctx context.Context, projectId string) (bool, error)

	// find projects matching the query. Empty query fields do not narrow.
	//
	// No match is an empty slice, not an error.
	Find(ctx context.Context, query domain.ProjectFindQuery) ([]domain.Project, error)

	// update the project description. Other fields are immutable
	// or owned by SetCondition.
	UpdateDescription(ctx context.Context, projectId string, description string) (domain.Project, error)

	// SetCondition persists a status/state transition.
	//
	// Returns ErrMissing when no such project exists.
	SetCondition(ctx context.Context, projectId string, status domain.Status, state domain.State) error

	// Delete removes the project row permanently (purge).
	//
	// Dependent resource/activity/permission rows are NOT cascaded;
	// cleaning them up is an external reconciler's job.
	Delete(ctx context.Context, projectId string) error
}
