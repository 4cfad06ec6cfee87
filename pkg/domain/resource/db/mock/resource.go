package mocks

import (
	"context"
	"errors"

	"github.com/zbitech/zbi-db/pkg/domain"
	dbmock "github.com/zbitech/zbi-db/pkg/domain/internal/db/mock"
	kpgres "github.com/zbitech/zbi-db/pkg/domain/resource/db"
)

type ResourceInterface struct {
	Impl struct {
		Upsert    func(context.Context, string, kpgres.ResourceSpec) (domain.Resource, error)
		Get       func(context.Context, string, domain.ResourceKind, string) (domain.Resource, error)
		List      func(context.Context, string) ([]domain.Resource, error)
		Delete    func(context.Context, string, domain.ResourceKind, string) error
	}
	Calls struct {
		Upsert dbmock.CallLog[struct {
			OwnerId string
			Spec    kpgres.ResourceSpec
		}]
		Get dbmock.CallLog[struct {
			OwnerId string
			Kind    domain.ResourceKind
			Name    string
		}]
		List   dbmock.CallLog[struct{ OwnerId string }]
		Delete dbmock.CallLog[struct {
			OwnerId string
			Kind    domain.ResourceKind
			Name    string
		}]
	}
}

func NewResourceInterface() *ResourceInterface {
	return &ResourceInterface{}
}

var _ kpgres.Interface = &ResourceInterface{}

func (ri *ResourceInterface) Upsert(ctx context.Context, ownerId string, spec kpgres.ResourceSpec) (domain.Resource, error) {
	ri.Calls.Upsert = append(ri.Calls.Upsert, struct {
		OwnerId string
		Spec    kpgres.ResourceSpec
	}{
		OwnerId: ownerId, Spec: spec,
	})
	if ri.Impl.Upsert != nil {
		return ri.Impl.Upsert(ctx, ownerId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (ri *ResourceInterface) Get(ctx context.Context, ownerId string, kind domain.ResourceKind, name string) (domain.Resource, error) {
	ri.Calls.Get = append(ri.Calls.Get, struct {
		OwnerId string
		Kind    domain.ResourceKind
		Name    string
	}{
		OwnerId: ownerId, Kind: kind, Name: name,
	})
	if ri.Impl.Get != nil {
		return ri.Impl.Get(ctx, ownerId, kind, name)
	}
	panic(errors.New("it should not be called"))
}

func (ri *ResourceInterface) List(ctx context.Context, ownerId string) ([]domain.Resource, error) {
	ri.Calls.List = append(ri.Calls.List, struct{ OwnerId string }{OwnerId: ownerId})
	if ri.Impl.List != nil {
		return ri.Impl.List(ctx, ownerId)
	}
	panic(errors.New("it should not be called"))
}

func (ri *ResourceInterface) Delete(ctx context.Context, ownerId string, kind domain.ResourceKind, name string) error {
	ri.Calls.Delete = append(ri.Calls.Delete, struct {
		OwnerId string
		Kind    domain.ResourceKind
		Name    string
	}{
		OwnerId: ownerId, Kind: kind, Name: name,
	})
	if ri.Impl.Delete != nil {
		return ri.Impl.Delete(ctx, ownerId, kind, name)
	}
	panic(errors.New("it should not be called"))
}
