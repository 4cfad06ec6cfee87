package mocks

import (
	"context"
	"errors"

	"github.com/zbitech/zbi-db/pkg/domain"
	dbmock "github.com/zbitech/zbi-db/pkg/domain/internal/db/mock"
	"github.com/zbitech/zbi-db/pkg/domain/lifecycle"
	kpgres "github.com/zbitech/zbi-db/pkg/domain/resource/db"
)

type LifecycleInterface struct {
	Impl struct {
		UpdateResource func(context.Context, domain.OwnerScope, string, kpgres.ResourceSpec) (domain.Resource, error)
		RequestDelete  func(context.Context, domain.OwnerScope, string) error
		Purge          func(context.Context, domain.OwnerScope, string) error
		AddActivity    func(context.Context, string, domain.Operation) ([]domain.Activity, error)
		GetInstance    func(context.Context, string) (domain.Instance, error)
		GetResources   func(context.Context, string) (domain.KubernetesResources, error)
	}
	Calls struct {
		UpdateResource dbmock.CallLog[struct {
			Scope   domain.OwnerScope
			OwnerId string
			Spec    kpgres.ResourceSpec
		}]
		RequestDelete dbmock.CallLog[struct {
			Scope   domain.OwnerScope
			OwnerId string
		}]
		Purge dbmock.CallLog[struct {
			Scope   domain.OwnerScope
			OwnerId string
		}]
		AddActivity dbmock.CallLog[struct {
			OwnerId   string
			Operation domain.Operation
		}]
		GetInstance  dbmock.CallLog[struct{ InstanceId string }]
		GetResources dbmock.CallLog[struct{ OwnerId string }]
	}
}

func NewLifecycleInterface() *LifecycleInterface {
	return &LifecycleInterface{}
}

var _ lifecycle.Interface = &LifecycleInterface{}

func (li *LifecycleInterface) UpdateResource(ctx context.Context, scope domain.OwnerScope, ownerId string, spec kpgres.ResourceSpec) (domain.Resource, error) {
	li.Calls.UpdateResource = append(li.Calls.UpdateResource, struct {
		Scope   domain.OwnerScope
		OwnerId string
		Spec    kpgres.ResourceSpec
	}{
		Scope: scope, OwnerId: ownerId, Spec: spec,
	})
	if li.Impl.UpdateResource != nil {
		return li.Impl.UpdateResource(ctx, scope, ownerId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (li *LifecycleInterface) RequestDelete(ctx context.Context, scope domain.OwnerScope, ownerId string) error {
	li.Calls.RequestDelete = append(li.Calls.RequestDelete, struct {
		Scope   domain.OwnerScope
		OwnerId string
	}{
		Scope: scope, OwnerId: ownerId,
	})
	if li.Impl.RequestDelete != nil {
		return li.Impl.RequestDelete(ctx, scope, ownerId)
	}
	panic(errors.New("it should not be called"))
}

func (li *LifecycleInterface) Purge(ctx context.Context, scope domain.OwnerScope, ownerId string) error {
	li.Calls.Purge = append(li.Calls.Purge, struct {
		Scope   domain.OwnerScope
		OwnerId string
	}{
		Scope: scope, OwnerId: ownerId,
	})
	if li.Impl.Purge != nil {
		return li.Impl.Purge(ctx, scope, ownerId)
	}
	panic(errors.New("it should not be called"))
}

func (li *LifecycleInterface) AddActivity(ctx context.Context, ownerId string, op domain.Operation) ([]domain.Activity, error) {
	li.Calls.AddActivity = append(li.Calls.AddActivity, struct {
		OwnerId   string
		Operation domain.Operation
	}{
		OwnerId: ownerId, Operation: op,
	})
	if li.Impl.AddActivity != nil {
		return li.Impl.AddActivity(ctx, ownerId, op)
	}
	panic(errors.New("it should not be called"))
}

func (li *LifecycleInterface) GetInstance(ctx context.Context, instanceId string) (domain.Instance, error) {
	li.Calls.GetInstance = append(li.Calls.GetInstance, struct{ InstanceId string }{InstanceId: instanceId})
	if li.Impl.GetInstance != nil {
		return li.Impl.GetInstance(ctx, instanceId)
	}
	panic(errors.New("it should not be called"))
}

func (li *LifecycleInterface) GetResources(ctx context.Context, ownerId string) (domain.KubernetesResources, error) {
	li.Calls.GetResources = append(li.Calls.GetResources, struct{ OwnerId string }{OwnerId: ownerId})
	if li.Impl.GetResources != nil {
		return li.Impl.GetResources(ctx, ownerId)
	}
	panic(errors.New("it should not be called"))
}
