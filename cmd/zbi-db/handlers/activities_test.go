package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	httptestutil "github.com/zbitech/zbi-db/internal/testutils/http"
	apiact "github.com/zbitech/zbi-db/pkg/api/types/activities"
	"github.com/zbitech/zbi-db/pkg/domain"
	actmocks "github.com/zbitech/zbi-db/pkg/domain/activity/db/mock"
	lcmocks "github.com/zbitech/zbi-db/pkg/domain/lifecycle/mock"
	"github.com/zbitech/zbi-db/pkg/utils/cmp"

	"github.com/zbitech/zbi-db/cmd/zbi-db/handlers"
)

func TestListActivityHandler(t *testing.T) {

	t.Run("it responds the history oldest first", func(t *testing.T) {
		dbactivity := actmocks.NewActivityInterface()
		dbactivity.Impl.List = func(ctx context.Context, ownerId string) ([]domain.Activity, error) {
			return []domain.Activity{
				{Id: "activity-1", OwnerId: ownerId, Operation: domain.OpCreate, Completed: true, Success: true},
				{Id: "activity-2", OwnerId: ownerId, Operation: domain.OpStart},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/instances/instance-1/activities/")
		c.SetPath("/api/instances/:instance/activities/")
		c.SetParamNames("instance")
		c.SetParamValues("instance-1")

		if err := handlers.ListActivityHandler(dbactivity, "instance")(c); err != nil {
			t.Fatal(err)
		}

		actual := []apiact.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not an activity list: %s", err)
		}
		if len(actual) != 2 || actual[0].Id != "activity-1" || actual[1].Id != "activity-2" {
			t.Errorf("unexpected response: %+v", actual)
		}
	})
}

func TestAddActivityHandler(t *testing.T) {

	t.Run("it appends the operation and responds the whole history", func(t *testing.T) {
		lc := lcmocks.NewLifecycleInterface()
		lc.Impl.AddActivity = func(ctx context.Context, ownerId string, op domain.Operation) ([]domain.Activity, error) {
			return []domain.Activity{
				{Id: "activity-1", OwnerId: ownerId, Operation: domain.OpCreate, Completed: true, Success: true},
				{Id: "activity-2", OwnerId: ownerId, Operation: op},
			}, nil
		}

		body := []byte(`{"operation": "snapshot"}`)

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/instances/instance-1/activities/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/instances/:instance/activities/")
		c.SetParamNames("instance")
		c.SetParamValues("instance-1")

		if err := handlers.AddActivityHandler(lc, "instance")(c); err != nil {
			t.Fatal(err)
		}

		if !cmp.SliceEq(
			lc.Calls.AddActivity,
			[]struct {
				OwnerId   string
				Operation domain.Operation
			}{
				{OwnerId: "instance-1", Operation: domain.OpSnapshot},
			},
		) {
			t.Errorf("AddActivity did not call with correct args: %+v", lc.Calls.AddActivity)
		}

		actual := []apiact.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not an activity list: %s", err)
		}
		if len(actual) != 2 || actual[1].Operation != "snapshot" {
			t.Errorf("unexpected response: %+v", actual)
		}
		if actual[1].Completed || actual[1].Success {
			t.Errorf("a fresh activity must start incomplete: %+v", actual[1])
		}
	})

	t.Run("an unknown operation responds 400", func(t *testing.T) {
		lc := lcmocks.NewLifecycleInterface()

		body := []byte(`{"operation": "defragment"}`)

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/instances/instance-1/activities/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/instances/:instance/activities/")
		c.SetParamNames("instance")
		c.SetParamValues("instance-1")

		err := handlers.AddActivityHandler(lc, "instance")(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusBadRequest {
			t.Errorf("unexpected status code: %d (expected: %d)", echoErr.Code, http.StatusBadRequest)
		}
		if lc.Calls.AddActivity.Times() != 0 {
			t.Errorf("AddActivity should not be called")
		}
	})
}
