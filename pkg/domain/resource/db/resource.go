package db

import (
	"context"

	"github.com/zbitech/zbi-db/pkg/domain"
)

// ResourceSpec is the reported shape of a Kubernetes object.
type ResourceSpec struct {
	Kind       domain.ResourceKind
	Name       string
	Status     string
	Properties map[string]interface{}
}

type Interface interface {
	// Upsert records the reported state of a Kubernetes object for an owner.
	//
	// For singleton kinds the record is keyed by (owner, kind): a report
	// under a different name replaces the tracked record. For repeatable
	// kinds the key is (owner, kind, name) and each name is its own record.
	//
	// An existing record keeps its id and created_at; status and properties
	// are overwritten.
	Upsert(ctx context.Context, ownerId string, spec ResourceSpec) (domain.Resource, error)

	// retrieve one resource record.
	//
	// For singleton kinds name is ignored and may be empty.
	// Returns ErrMissing (via Missing) when no such record exists.
	Get(ctx context.Context, ownerId string, kind domain.ResourceKind, name string) (domain.Resource, error)

	// List returns all of the owner's resource records in insertion order.
	List(ctx context.Context, ownerId string) ([]domain.Resource, error)

	// Delete removes one resource record.
	//
	// For singleton kinds name is ignored and may be empty.
	Delete(ctx context.Context, ownerId string, kind domain.ResourceKind, name string) error

}
