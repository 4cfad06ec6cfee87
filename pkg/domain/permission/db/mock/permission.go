package mocks

import (
	"context"
	"errors"

	"github.com/zbitech/zbi-db/pkg/domain"
	dbmock "github.com/zbitech/zbi-db/pkg/domain/internal/db/mock"
	kpgperm "github.com/zbitech/zbi-db/pkg/domain/permission/db"
)

type PermissionInterface struct {
	Impl struct {
		Set       func(context.Context, string, string, domain.PermissionFlags) (domain.Permission, error)
		Get       func(context.Context, string, string) (domain.Permission, error)
		List      func(context.Context, string) ([]domain.Permission, error)
		Remove    func(context.Context, string, string) error
	}
	Calls struct {
		Set dbmock.CallLog[struct {
			OwnerId string
			UserId  string
			Flags   domain.PermissionFlags
		}]
		Get dbmock.CallLog[struct {
			OwnerId string
			UserId  string
		}]
		List   dbmock.CallLog[struct{ OwnerId string }]
		Remove dbmock.CallLog[struct {
			OwnerId string
			UserId  string
		}]
	}
}

func NewPermissionInterface() *PermissionInterface {
	return &PermissionInterface{}
}

var _ kpgperm.Interface = &PermissionInterface{}

func (pi *PermissionInterface) Set(ctx context.Context, ownerId string, userId string, flags domain.PermissionFlags) (domain.Permission, error) {
	pi.Calls.Set = append(pi.Calls.Set, struct {
		OwnerId string
		UserId  string
		Flags   domain.PermissionFlags
	}{
		OwnerId: ownerId, UserId: userId, Flags: flags,
	})
	if pi.Impl.Set != nil {
		return pi.Impl.Set(ctx, ownerId, userId, flags)
	}
	panic(errors.New("it should not be called"))
}

func (pi *PermissionInterface) Get(ctx context.Context, ownerId string, userId string) (domain.Permission, error) {
	pi.Calls.Get = append(pi.Calls.Get, struct {
		OwnerId string
		UserId  string
	}{
		OwnerId: ownerId, UserId: userId,
	})
	if pi.Impl.Get != nil {
		return pi.Impl.Get(ctx, ownerId, userId)
	}
	panic(errors.New("it should not be called"))
}

func (pi *PermissionInterface) List(ctx context.Context, ownerId string) ([]domain.Permission, error) {
	pi.Calls.List = append(pi.Calls.List, struct{ OwnerId string }{OwnerId: ownerId})
	if pi.Impl.List != nil {
		return pi.Impl.List(ctx, ownerId)
	}
	panic(errors.New("it should not be called"))
}

func (pi *PermissionInterface) Remove(ctx context.Context, ownerId string, userId string) error {
	pi.Calls.Remove = append(pi.Calls.Remove, struct {
		OwnerId string
		UserId  string
	}{
		OwnerId: ownerId, UserId: userId,
	})
	if pi.Impl.Remove != nil {
		return pi.Impl.Remove(ctx, ownerId, userId)
	}
	panic(errors.New("it should not be called"))
}
