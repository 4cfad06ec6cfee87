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
	apiperm "github.com/zbitech/zbi-db/pkg/api/types/permissions"
	"github.com/zbitech/zbi-db/pkg/domain"
	"github.com/zbitech/zbi-db/pkg/domain/errors/dberrors/postgres"
	permmocks "github.com/zbitech/zbi-db/pkg/domain/permission/db/mock"
	"github.com/zbitech/zbi-db/pkg/utils/cmp"
	"github.com/zbitech/zbi-db/pkg/utils/try"

	"github.com/zbitech/zbi-db/cmd/zbi-db/handlers"
)

func TestSetPermissionHandler(t *testing.T) {

	t.Run("it grants the requested flags", func(t *testing.T) {
		dbpermission := permmocks.NewPermissionInterface()
		dbpermission.Impl.Set = func(ctx context.Context, ownerId string, userId string, flags domain.PermissionFlags) (domain.Permission, error) {
			return domain.Permission{
				Id: "permission-1", OwnerId: ownerId, UserId: userId, Flags: flags,
			}, nil
		}

		body := try.To(json.Marshal(apiperm.Spec{
			UserId: "user-2",
			Flags:  apiperm.Flags{Read: true, Operate: true},
		})).OrFatal(t)

		e := echo.New()
		c, respRec := httptestutil.Put(
			e, "/api/projects/project-1/permissions/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/projects/:project/permissions/")
		c.SetParamNames("project")
		c.SetParamValues("project-1")

		if err := handlers.SetPermissionHandler(dbpermission, "project")(c); err != nil {
			t.Fatal(err)
		}

		if !cmp.SliceEq(
			dbpermission.Calls.Set,
			[]struct {
				OwnerId string
				UserId  string
				Flags   domain.PermissionFlags
			}{
				{
					OwnerId: "project-1", UserId: "user-2",
					Flags: domain.PermissionFlags{Read: true, Operate: true},
				},
			},
		) {
			t.Errorf("Set did not call with correct args: %+v", dbpermission.Calls.Set)
		}

		actual := apiperm.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not a permission detail: %s", err)
		}
		if actual.UserId != "user-2" || !actual.Flags.Read || !actual.Flags.Operate || actual.Flags.Delete {
			t.Errorf("unexpected response: %+v", actual)
		}
	})

	t.Run("a missing userId responds 400", func(t *testing.T) {
		dbpermission := permmocks.NewPermissionInterface()

		body := try.To(json.Marshal(apiperm.Spec{Flags: apiperm.Flags{Read: true}})).OrFatal(t)

		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/projects/project-1/permissions/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/projects/:project/permissions/")
		c.SetParamNames("project")
		c.SetParamValues("project-1")

		err := handlers.SetPermissionHandler(dbpermission, "project")(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusBadRequest {
			t.Errorf("unexpected status code: %d (expected: %d)", echoErr.Code, http.StatusBadRequest)
		}
		if dbpermission.Calls.Set.Times() != 0 {
			t.Errorf("Set should not be called")
		}
	})
}

func TestGetPermissionHandler(t *testing.T) {

	t.Run("a user without a record responds 404", func(t *testing.T) {
		dbpermission := permmocks.NewPermissionInterface()
		dbpermission.Impl.Get = func(ctx context.Context, ownerId string, userId string) (domain.Permission, error) {
			return domain.Permission{}, postgres.Missing{Table: "permission", Identity: userId}
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/projects/project-1/permissions/user-9/")
		c.SetPath("/api/projects/:project/permissions/:user/")
		c.SetParamNames("project", "user")
		c.SetParamValues("project-1", "user-9")

		err := handlers.GetPermissionHandler(dbpermission, "project", "user")(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusNotFound {
			t.Errorf("unexpected status code: %d (expected: %d)", echoErr.Code, http.StatusNotFound)
		}
	})
}

func TestListPermissionHandler(t *testing.T) {

	t.Run("it responds every grant on the owner", func(t *testing.T) {
		dbpermission := permmocks.NewPermissionInterface()
		dbpermission.Impl.List = func(ctx context.Context, ownerId string) ([]domain.Permission, error) {
			return []domain.Permission{
				{Id: "permission-1", OwnerId: ownerId, UserId: "user-2", Flags: domain.PermissionFlags{Read: true}},
				{Id: "permission-2", OwnerId: ownerId, UserId: "user-3", Flags: domain.PermissionFlags{Read: true, Update: true}},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/projects/project-1/permissions/")
		c.SetPath("/api/projects/:project/permissions/")
		c.SetParamNames("project")
		c.SetParamValues("project-1")

		if err := handlers.ListPermissionHandler(dbpermission, "project")(c); err != nil {
			t.Fatal(err)
		}

		actual := []apiperm.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not a permission list: %s", err)
		}
		if len(actual) != 2 {
			t.Errorf("unexpected response: %+v", actual)
		}
	})
}

func TestRemovePermissionHandler(t *testing.T) {

	t.Run("it revokes the record and responds 204", func(t *testing.T) {
		dbpermission := permmocks.NewPermissionInterface()
		dbpermission.Impl.Remove = func(ctx context.Context, ownerId string, userId string) error {
			return nil
		}

		e := echo.New()
		c, respRec := httptestutil.Delete(e, "/api/projects/project-1/permissions/user-2/")
		c.SetPath("/api/projects/:project/permissions/:user/")
		c.SetParamNames("project", "user")
		c.SetParamValues("project-1", "user-2")

		if err := handlers.RemovePermissionHandler(dbpermission, "project", "user")(c); err != nil {
			t.Fatal(err)
		}

		if !cmp.SliceEq(
			dbpermission.Calls.Remove,
			[]struct {
				OwnerId string
				UserId  string
			}{
				{OwnerId: "project-1", UserId: "user-2"},
			},
		) {
			t.Errorf("Remove did not call with correct args: %+v", dbpermission.Calls.Remove)
		}
		if respRec.Code != http.StatusNoContent {
			t.Errorf("unexpected status code: %d (expected: %d)", respRec.Code, http.StatusNoContent)
		}
	})

	t.Run("revoking a user who holds no record responds 404", func(t *testing.T) {
		dbpermission := permmocks.NewPermissionInterface()
		dbpermission.Impl.Remove = func(ctx context.Context, ownerId string, userId string) error {
			return postgres.Missing{Table: "permission", Identity: userId}
		}

		e := echo.New()
		c, _ := httptestutil.Delete(e, "/api/projects/project-1/permissions/user-9/")
		c.SetPath("/api/projects/:project/permissions/:user/")
		c.SetParamNames("project", "user")
		c.SetParamValues("project-1", "user-9")

		err := handlers.RemovePermissionHandler(dbpermission, "project", "user")(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusNotFound {
			t.Errorf("unexpected status code: %d (expected: %d)", echoErr.Code, http.StatusNotFound)
		}
	})
}
