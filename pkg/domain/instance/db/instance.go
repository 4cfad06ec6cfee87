package db

import (
	"context"

	"github.com/zbitech/zbi-db/pkg/domain"
)

// InstanceSpec is what a new instance is created from.
type InstanceSpec struct {
	ProjectId string
	Name      string
	Type      domain.NodeKind
	Request   *domain.ResourceRequest
}

type Interface interface {
	// create a new instance under a project.
	//
	// The new instance starts with status "new" and state "creating".
	//
	// Returns ErrExists (via Conflict) when the project already has an
	// instance with the same name.
	Create(ctx context.Context, spec InstanceSpec) (domain.InstanceBody, error)

	// retrieve an instance record by id, without attachments.
	//
	// Returns ErrMissing (via Missing) when no such instance exists.
	Get(ctx context.Context, instanceId string) (domain.InstanceBody, error)

	// Check reports whether an instance with the id exists,
	// without loading the record. Used by route guards.
	Check(ctx context.Context, instanceId string) (bool, error)

	// find instances matching the query. Empty query fields do not narrow.
	//
	// No match is an empty slice, not an error.
	Find(ctx context.Context, query domain.InstanceFindQuery) ([]domain.InstanceBody, error)

	// UpdateRequest replaces the provisioning request of an instance.
	UpdateRequest(ctx context.Context, instanceId string, request *domain.ResourceRequest) (domain.InstanceBody, error)

	// SetCondition persists a status/state transition.
	//
	// Returns ErrMissing when no such instance exists.
	SetCondition(ctx context.Context, instanceId string, status domain.Status, state domain.State) error

	// Delete removes the instance row permanently (purge).
	//
	// Dependent resource/activity/permission rows are NOT cascaded;
	// cleaning them up is an external reconciler's job.
	Delete(ctx context.Context, instanceId string) error
}
