package lifecycle

import (
	"context"

	"github.com/zbitech/zbi-db/pkg/domain"
	kpgact "github.com/zbitech/zbi-db/pkg/domain/activity/db"
	kpginst "github.com/zbitech/zbi-db/pkg/domain/instance/db"
	kpgperm "github.com/zbitech/zbi-db/pkg/domain/permission/db"
	kpgproj "github.com/zbitech/zbi-db/pkg/domain/project/db"
	kpgres "github.com/zbitech/zbi-db/pkg/domain/resource/db"
)

// Interface coordinates writes that span an owner and its dependents:
// resource reports that transit the owner's condition, delete requests,
// purges, and read-time composition of an instance with its attachments.
type Interface interface {
	// UpdateResource records the reported state of a Kubernetes object
	// and, when the report concerns the owner's trigger kind (namespace
	// for projects, deployment for instances), transits the owner's
	// status and state accordingly.
	//
	// The resource write and the owner transition are two separate
	// statements. When the owner transition fails the resource record
	// stays written; the next report converges the owner again.
	UpdateResource(ctx context.Context, scope domain.OwnerScope, ownerId string, spec kpgres.ResourceSpec) (domain.Resource, error)

	// RequestDelete marks the owner as going away: status "deleted",
	// state "deleting". Rows are kept; actual teardown is reported back
	// resource by resource and erased by Purge.
	RequestDelete(ctx context.Context, scope domain.OwnerScope, ownerId string) error

	// Purge erases the owner row. A prior RequestDelete is not
	// required.
	//
	// Dependent resource and permission rows are not cascaded; their
	// cleanup belongs to the reconciler tearing down the cluster
	// objects. Activity rows expire on their own.
	Purge(ctx context.Context, scope domain.OwnerScope, ownerId string) error

	// AddActivity appends an operation record for the owner and returns
	// the owner's whole activity history, oldest first.
	AddActivity(ctx context.Context, ownerId string, op domain.Operation) ([]domain.Activity, error)

	// GetInstance loads an instance with its owning project, its typed
	// resource bundle, its activity history and its permission grants.
	GetInstance(ctx context.Context, instanceId string) (domain.Instance, error)

	// GetResources loads an owner's typed resource bundle.
	GetResources(ctx context.Context, ownerId string) (domain.KubernetesResources, error)
}

type coordinator struct {
	projects    kpgproj.Interface
	instances   kpginst.Interface
	resources   kpgres.Interface
	activities  kpgact.Interface
	permissions kpgperm.Interface
}

func New(
	projects kpgproj.Interface,
	instances kpginst.Interface,
	resources kpgres.Interface,
	activities kpgact.Interface,
	permissions kpgperm.Interface,
) Interface {
	return &coordinator{
		projects:    projects,
		instances:   instances,
		resources:   resources,
		activities:  activities,
		permissions: permissions,
	}
}

func (c *coordinator) setCondition(ctx context.Context, scope domain.OwnerScope, ownerId string, status domain.Status, state domain.State) error {
	if scope == domain.ScopeProject {
		return c.projects.SetCondition(ctx, ownerId, status, state)
	}
	return c.instances.SetCondition(ctx, ownerId, status, state)
}

func (c *coordinator) UpdateResource(ctx context.Context, scope domain.OwnerScope, ownerId string, spec kpgres.ResourceSpec) (domain.Resource, error) {
	res, err := c.resources.Upsert(ctx, ownerId, spec)
	if err != nil {
		return domain.Resource{}, err
	}

	if spec.Kind == domain.TriggerFor(scope) {
		status, state := domain.OwnerConditionFor(scope, spec.Status)
		if err := c.setCondition(ctx, scope, ownerId, status, state); err != nil {
			return domain.Resource{}, err
		}
	}

	return res, nil
}

func (c *coordinator) RequestDelete(ctx context.Context, scope domain.OwnerScope, ownerId string) error {
	return c.setCondition(ctx, scope, ownerId, domain.StatusDeleted, domain.StateDeleting)
}

func (c *coordinator) Purge(ctx context.Context, scope domain.OwnerScope, ownerId string) error {
	if scope == domain.ScopeProject {
		return c.projects.Delete(ctx, ownerId)
	}
	return c.instances.Delete(ctx, ownerId)
}

func (c *coordinator) AddActivity(ctx context.Context, ownerId string, op domain.Operation) ([]domain.Activity, error) {
	if _, err := c.activities.Append(ctx, ownerId, op); err != nil {
		return nil, err
	}
	return c.activities.List(ctx, ownerId)
}

func (c *coordinator) GetInstance(ctx context.Context, instanceId string) (domain.Instance, error) {
	body, err := c.instances.Get(ctx, instanceId)
	if err != nil {
		return domain.Instance{}, err
	}

	project, err := c.projects.Get(ctx, body.ProjectId)
	if err != nil {
		return domain.Instance{}, err
	}

	resources, err := c.GetResources(ctx, instanceId)
	if err != nil {
		return domain.Instance{}, err
	}

	activities, err := c.activities.List(ctx, instanceId)
	if err != nil {
		return domain.Instance{}, err
	}

	permissions, err := c.permissions.List(ctx, instanceId)
	if err != nil {
		return domain.Instance{}, err
	}

	return domain.Instance{
		InstanceBody: body,
		Project:      &project,
		Resources:    resources,
		Activities:   activities,
		Permissions:  permissions,
	}, nil
}

func (c *coordinator) GetResources(ctx context.Context, ownerId string) (domain.KubernetesResources, error) {
	flat, err := c.resources.List(ctx, ownerId)
	if err != nil {
		return domain.KubernetesResources{}, err
	}
	return domain.BundleResources(flat), nil
}
