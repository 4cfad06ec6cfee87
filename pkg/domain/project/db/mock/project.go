package mocks

import (
	"context"
	"errors"

	"github.com/zbitech/zbi-db/pkg/domain"
	dbmock "github.com/zbitech/zbi-db/pkg/domain/internal/db/mock"
	kpgproj "github.com/zbitech/zbi-db/pkg/domain/project/db"
)

type ProjectInterface struct {
	Impl struct {
		Create            func(context.Context, kpgproj.ProjectSpec) (domain.Project, error)
		Get               func(context.Context, string) (domain.Project, error)
		Check             func(context.Context, string) (bool, error)
		Find              func(context.Context, domain.ProjectFindQuery) ([]domain.Project, error)
		UpdateDescription func(context.Context, string, string) (domain.Project, error)
		SetCondition      func(context.Context, string, domain.Status, domain.State) error
		Delete            func(context.Context, string) error
	}
	Calls struct {
		Create            dbmock.CallLog[kpgproj.ProjectSpec]
		Get               dbmock.CallLog[struct{ ProjectId string }]
		Check             dbmock.CallLog[struct{ ProjectId string }]
		Find              dbmock.CallLog[domain.ProjectFindQuery]
		UpdateDescription dbmock.CallLog[struct {
			ProjectId   string
			Description string
		}]
		SetCondition dbmock.CallLog[struct {
			ProjectId string
			Status    domain.Status
			State     domain.State
		}]
		Delete dbmock.CallLog[struct{ ProjectId string }]
	}
}

func NewProjectInterface() *ProjectInterface {
	return &ProjectInterface{}
}

var _ kpgproj.Interface = &ProjectInterface{}

func (pi *ProjectInterface) Create(ctx context.Context, spec kpgproj.ProjectSpec) (domain.Project, error) {
	pi.Calls.Create = append(pi.Calls.Create, spec)
	if pi.Impl.Create != nil {
		return pi.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (pi *ProjectInterface) Get(ctx context.Context, projectId string) (domain.Project, error) {
	pi.Calls.Get = append(pi.Calls.Get, struct{ ProjectId string }{ProjectId: projectId})
	if pi.Impl.Get != nil {
		return pi.Impl.Get(ctx, projectId)
	}
	panic(errors.New("it should not be called"))
}

func (pi *ProjectInterface) Check(ctx context.Context, projectId string) (bool, error) {
	pi.Calls.Check = append(pi.Calls.Check, struct{ ProjectId string }{ProjectId: projectId})
	if pi.Impl.Check != nil {
		return pi.Impl.Check(ctx, projectId)
	}
	panic(errors.New("it should not be called"))
}

func (pi *ProjectInterface) Find(ctx context.Context, query domain.ProjectFindQuery) ([]domain.Project, error) {
	pi.Calls.Find = append(pi.Calls.Find, query)
	if pi.Impl.Find != nil {
		return pi.Impl.Find(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (pi *ProjectInterface) UpdateDescription(ctx context.Context, projectId string, description string) (domain.Project, error) {
	pi.Calls.UpdateDescription = append(pi.Calls.UpdateDescription, struct {
		ProjectId   string
		Description string
	}{
		ProjectId: projectId, Description: description,
	})
	if pi.Impl.UpdateDescription != nil {
		return pi.Impl.UpdateDescription(ctx, projectId, description)
	}
	panic(errors.New("it should not be called"))
}

func (pi *ProjectInterface) SetCondition(ctx context.Context, projectId string, status domain.Status, state domain.State) error {
	pi.Calls.SetCondition = append(pi.Calls.SetCondition, struct {
		ProjectId string
		Status    domain.Status
		State     domain.State
	}{
		ProjectId: projectId, Status: status, State: state,
	})
	if pi.Impl.SetCondition != nil {
		return pi.Impl.SetCondition(ctx, projectId, status, state)
	}
	panic(errors.New("it should not be called"))
}

func (pi *ProjectInterface) Delete(ctx context.Context, projectId string) error {
	pi.Calls.Delete = append(pi.Calls.Delete, struct{ ProjectId string }{ProjectId: projectId})
	if pi.Impl.Delete != nil {
		return pi.Impl.Delete(ctx, projectId)
	}
	panic(errors.New("it should not be called"))
}
