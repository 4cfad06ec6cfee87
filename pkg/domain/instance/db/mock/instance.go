package mocks

import (
	"context"
	"errors"

	"github.com/zbitech/zbi-db/pkg/domain"
	kpginst "github.com/zbitech/zbi-db/pkg/domain/instance/db"
	dbmock "github.com/zbitech/zbi-db/pkg/domain/internal/db/mock"
)

type InstanceInterface struct {
	Impl struct {
		Create        func(context.Context, kpginst.InstanceSpec) (domain.InstanceBody, error)
		Get           func(context.Context, string) (domain.InstanceBody, error)
		Check         func(context.Context, string) (bool, error)
		Find          func(context.Context, domain.InstanceFindQuery) ([]domain.InstanceBody, error)
		UpdateRequest func(context.Context, string, *domain.ResourceRequest) (domain.InstanceBody, error)
		SetCondition  func(context.Context, string, domain.Status, domain.State) error
		Delete        func(context.Context, string) error
	}
	Calls struct {
		Create        dbmock.CallLog[kpginst.InstanceSpec]
		Get           dbmock.CallLog[struct{ InstanceId string }]
		Check         dbmock.CallLog[struct{ InstanceId string }]
		Find          dbmock.CallLog[domain.InstanceFindQuery]
		UpdateRequest dbmock.CallLog[struct {
			InstanceId string
			Request    *domain.ResourceRequest
		}]
		SetCondition dbmock.CallLog[struct {
			InstanceId string
			Status     domain.Status
			State      domain.State
		}]
		Delete dbmock.CallLog[struct{ InstanceId string }]
	}
}

func NewInstanceInterface() *InstanceInterface {
	return &InstanceInterface{}
}

var _ kpginst.Interface = &InstanceInterface{}

func (ii *InstanceInterface) Create(ctx context.Context, spec kpginst.InstanceSpec) (domain.InstanceBody, error) {
	ii.Calls.Create = append(ii.Calls.Create, spec)
	if ii.Impl.Create != nil {
		return ii.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (ii *InstanceInterface) Get(ctx context.Context, instanceId string) (domain.InstanceBody, error) {
	ii.Calls.Get = append(ii.Calls.Get, struct{ InstanceId string }{InstanceId: instanceId})
	if ii.Impl.Get != nil {
		return ii.Impl.Get(ctx, instanceId)
	}
	panic(errors.New("it should not be called"))
}

func (ii *InstanceInterface) Check(ctx context.Context, instanceId string) (bool, error) {
	ii.Calls.Check = append(ii.Calls.Check, struct{ InstanceId string }{InstanceId: instanceId})
	if ii.Impl.Check != nil {
		return ii.Impl.Check(ctx, instanceId)
	}
	panic(errors.New("it should not be called"))
}

func (ii *InstanceInterface) Find(ctx context.Context, query domain.InstanceFindQuery) ([]domain.InstanceBody, error) {
	ii.Calls.Find = append(ii.Calls.Find, query)
	if ii.Impl.Find != nil {
		return ii.Impl.Find(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (ii *InstanceInterface) UpdateRequest(ctx context.Context, instanceId string, request *domain.ResourceRequest) (domain.InstanceBody, error) {
	ii.Calls.UpdateRequest = append(ii.Calls.UpdateRequest, struct {
		InstanceId string
		Request    *domain.ResourceRequest
	}{
		InstanceId: instanceId, Request: request,
	})
	if ii.Impl.UpdateRequest != nil {
		return ii.Impl.UpdateRequest(ctx, instanceId, request)
	}
	panic(errors.New("it should not be called"))
}

func (ii *InstanceInterface) SetCondition(ctx context.Context, instanceId string, status domain.Status, state domain.State) error {
	ii.Calls.SetCondition = append(ii.Calls.SetCondition, struct {
		InstanceId string
		Status     domain.Status
		State      domain.State
	}{
		InstanceId: instanceId, Status: status, State: state,
	})
	if ii.Impl.SetCondition != nil {
		return ii.Impl.SetCondition(ctx, instanceId, status, state)
	}
	panic(errors.New("it should not be called"))
}

func (ii *InstanceInterface) Delete(ctx context.Context, instanceId string) error {
	ii.Calls.Delete = append(ii.Calls.Delete, struct{ InstanceId string }{InstanceId: instanceId})
	if ii.Impl.Delete != nil {
		return ii.Impl.Delete(ctx, instanceId)
	}
	panic(errors.New("it should not be called"))
}
