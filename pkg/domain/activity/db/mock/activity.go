package mocks

import (
	"context"
	"errors"

	"github.com/zbitech/zbi-db/pkg/domain"
	kpgact "github.com/zbitech/zbi-db/pkg/domain/activity/db"
	dbmock "github.com/zbitech/zbi-db/pkg/domain/internal/db/mock"
)

type ActivityInterface struct {
	Impl struct {
		Append   func(context.Context, string, domain.Operation) (domain.Activity, error)
		Complete func(context.Context, string, bool) (domain.Activity, error)
		List     func(context.Context, string) ([]domain.Activity, error)
		Expire   func(context.Context) (int64, error)
	}
	Calls struct {
		Append dbmock.CallLog[struct {
			OwnerId   string
			Operation domain.Operation
		}]
		Complete dbmock.CallLog[struct {
			ActivityId string
			Success    bool
		}]
		List   dbmock.CallLog[struct{ OwnerId string }]
		Expire dbmock.CallLog[struct{}]
	}
}

func NewActivityInterface() *ActivityInterface {
	return &ActivityInterface{}
}

var _ kpgact.Interface = &ActivityInterface{}

func (ai *ActivityInterface) Append(ctx context.Context, ownerId string, op domain.Operation) (domain.Activity, error) {
	ai.Calls.Append = append(ai.Calls.Append, struct {
		OwnerId   string
		Operation domain.Operation
	}{
		OwnerId: ownerId, Operation: op,
	})
	if ai.Impl.Append != nil {
		return ai.Impl.Append(ctx, ownerId, op)
	}
	panic(errors.New("it should not be called"))
}

func (ai *ActivityInterface) Complete(ctx context.Context, activityId string, success bool) (domain.Activity, error) {
	ai.Calls.Complete = append(ai.Calls.Complete, struct {
		ActivityId string
		Success    bool
	}{
		ActivityId: activityId, Success: success,
	})
	if ai.Impl.Complete != nil {
		return ai.Impl.Complete(ctx, activityId, success)
	}
	panic(errors.New("it should not be called"))
}

func (ai *ActivityInterface) List(ctx context.Context, ownerId string) ([]domain.Activity, error) {
	ai.Calls.List = append(ai.Calls.List, struct{ OwnerId string }{OwnerId: ownerId})
	if ai.Impl.List != nil {
		return ai.Impl.List(ctx, ownerId)
	}
	panic(errors.New("it should not be called"))
}

func (ai *ActivityInterface) Expire(ctx context.Context) (int64, error) {
	ai.Calls.Expire = append(ai.Calls.Expire, struct{}{})
	if ai.Impl.Expire != nil {
		return ai.Impl.Expire(ctx)
	}
	panic(errors.New("it should not be called"))
}
