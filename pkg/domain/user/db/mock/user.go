package mocks

import (
	"context"
	"errors"

	"github.com/zbitech/zbi-db/pkg/domain"
	dbmock "github.com/zbitech/zbi-db/pkg/domain/internal/db/mock"
	kpguser "github.com/zbitech/zbi-db/pkg/domain/user/db"
)

type UserInterface struct {
	Impl struct {
		Register   func(context.Context, kpguser.UserSpec) (domain.User, error)
		Get        func(context.Context, string) (domain.User, error)
		GetByEmail func(context.Context, string) (domain.User, error)
		List       func(context.Context) ([]domain.User, error)
		SetActive  func(context.Context, string, bool) error
	}
	Calls struct {
		Register   dbmock.CallLog[kpguser.UserSpec]
		Get        dbmock.CallLog[struct{ UserId string }]
		GetByEmail dbmock.CallLog[struct{ Email string }]
		List       dbmock.CallLog[struct{}]
		SetActive  dbmock.CallLog[struct {
			UserId string
			Active bool
		}]
	}
}

func NewUserInterface() *UserInterface {
	return &UserInterface{}
}

var _ kpguser.Interface = &UserInterface{}

func (ui *UserInterface) Register(ctx context.Context, spec kpguser.UserSpec) (domain.User, error) {
	ui.Calls.Register = append(ui.Calls.Register, spec)
	if ui.Impl.Register != nil {
		return ui.Impl.Register(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (ui *UserInterface) Get(ctx context.Context, userId string) (domain.User, error) {
	ui.Calls.Get = append(ui.Calls.Get, struct{ UserId string }{UserId: userId})
	if ui.Impl.Get != nil {
		return ui.Impl.Get(ctx, userId)
	}
	panic(errors.New("it should not be called"))
}

func (ui *UserInterface) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	ui.Calls.GetByEmail = append(ui.Calls.GetByEmail, struct{ Email string }{Email: email})
	if ui.Impl.GetByEmail != nil {
		return ui.Impl.GetByEmail(ctx, email)
	}
	panic(errors.New("it should not be called"))
}

func (ui *UserInterface) List(ctx context.Context) ([]domain.User, error) {
	ui.Calls.List = append(ui.Calls.List, struct{}{})
	if ui.Impl.List != nil {
		return ui.Impl.List(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (ui *UserInterface) SetActive(ctx context.Context, userId string, active bool) error {
	ui.Calls.SetActive = append(ui.Calls.SetActive, struct {
		UserId string
		Active bool
	}{
		UserId: userId, Active: active,
	})
	if ui.Impl.SetActive != nil {
		return ui.Impl.SetActive(ctx, userId, active)
	}
	panic(errors.New("it should not be called"))
}
