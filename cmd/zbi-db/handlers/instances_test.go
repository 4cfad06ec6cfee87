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
	apiinst "github.com/zbitech/zbi-db/pkg/api/types/instances"
	"github.com/zbitech/zbi-db/pkg/domain"
	"github.com/zbitech/zbi-db/pkg/domain/errors/dberrors/postgres"
	kpginst "github.com/zbitech/zbi-db/pkg/domain/instance/db"
	instmocks "github.com/zbitech/zbi-db/pkg/domain/instance/db/mock"
	lcmocks "github.com/zbitech/zbi-db/pkg/domain/lifecycle/mock"
	"github.com/zbitech/zbi-db/pkg/utils/cmp"
	"github.com/zbitech/zbi-db/pkg/utils/try"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/zbitech/zbi-db/cmd/zbi-db/handlers"
)

func TestCreateInstanceHandler(t *testing.T) {

	t.Run("it creates an instance under the project in the route", func(t *testing.T) {
		dbinstance := instmocks.NewInstanceInterface()
		dbinstance.Impl.Create = func(ctx context.Context, spec kpginst.InstanceSpec) (domain.InstanceBody, error) {
			return domain.InstanceBody{
				Id: "instance-1", Name: spec.Name, Type: spec.Type,
				ProjectId: spec.ProjectId,
				Status:    domain.StatusNew, State: domain.StateCreating,
				Request: spec.Request,
			}, nil
		}

		body := try.To(json.Marshal(apiinst.Spec{
			Name: "zcash-node-1",
			Type: "zcash",
			Request: &apiinst.ResourceRequest{
				Cpu:    "500m",
				Memory: "2Gi",
				Peers:  []string{"zcash-node-2"},
				Volume: apiinst.VolumeSpec{Type: "pvc", Size: "10Gi"},
			},
		})).OrFatal(t)

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/projects/project-1/instances/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/projects/:project/instances/")
		c.SetParamNames("project")
		c.SetParamValues("project-1")

		testee := handlers.CreateInstanceHandler(dbinstance, "project")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if dbinstance.Calls.Create.Times() != 1 {
			t.Fatalf("Create: called %d times (expected: 1)", dbinstance.Calls.Create.Times())
		}
		created := dbinstance.Calls.Create[0]
		if created.ProjectId != "project-1" || created.Name != "zcash-node-1" || created.Type != domain.NodeZcash {
			t.Errorf("Create did not call with correct args: %+v", created)
		}
		expectedCpu := try.To(resource.ParseQuantity("500m")).OrFatal(t)
		if created.Request == nil || !created.Request.Cpu.Equal(expectedCpu) {
			t.Errorf("unexpected cpu request: %+v", created.Request)
		}

		actual := apiinst.Summary{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not an instance summary: %s", err)
		}
		if actual.Id != "instance-1" || actual.Status != "new" || actual.State != "creating" {
			t.Errorf("unexpected response: %+v", actual)
		}
	})

	t.Run("a taken name in the project responds 409", func(t *testing.T) {
		dbinstance := instmocks.NewInstanceInterface()
		dbinstance.Impl.Create = func(ctx context.Context, spec kpginst.InstanceSpec) (domain.InstanceBody, error) {
			return domain.InstanceBody{}, postgres.Conflict{Table: "instance", Identity: spec.Name}
		}

		body := try.To(json.Marshal(apiinst.Spec{Name: "zcash-node-1", Type: "zcash"})).OrFatal(t)

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/projects/project-1/instances/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/projects/:project/instances/")
		c.SetParamNames("project")
		c.SetParamValues("project-1")

		err := handlers.CreateInstanceHandler(dbinstance, "project")(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusConflict {
			t.Errorf("unexpected status code: %d (expected: %d)", echoErr.Code, http.StatusConflict)
		}
	})

	t.Run("an unknown node type responds 400", func(t *testing.T) {
		dbinstance := instmocks.NewInstanceInterface()

		body := try.To(json.Marshal(apiinst.Spec{Name: "node-1", Type: "dogecoin"})).OrFatal(t)

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/projects/project-1/instances/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/projects/:project/instances/")
		c.SetParamNames("project")
		c.SetParamValues("project-1")

		err := handlers.CreateInstanceHandler(dbinstance, "project")(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusBadRequest {
			t.Errorf("unexpected status code: %d (expected: %d)", echoErr.Code, http.StatusBadRequest)
		}
		if dbinstance.Calls.Create.Times() != 0 {
			t.Errorf("Create should not be called")
		}
	})

	t.Run("a malformed quantity responds 400", func(t *testing.T) {
		dbinstance := instmocks.NewInstanceInterface()

		body := try.To(json.Marshal(apiinst.Spec{
			Name: "node-1", Type: "zcash",
			Request: &apiinst.ResourceRequest{Cpu: "a lot"},
		})).OrFatal(t)

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/projects/project-1/instances/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/projects/:project/instances/")
		c.SetParamNames("project")
		c.SetParamValues("project-1")

		err := handlers.CreateInstanceHandler(dbinstance, "project")(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusBadRequest {
			t.Errorf("unexpected status code: %d (expected: %d)", echoErr.Code, http.StatusBadRequest)
		}
	})
}

func TestFindInstanceHandler(t *testing.T) {

	t.Run("it narrows by project, name and type", func(t *testing.T) {
		dbinstance := instmocks.NewInstanceInterface()
		dbinstance.Impl.Find = func(ctx context.Context, query domain.InstanceFindQuery) ([]domain.InstanceBody, error) {
			return []domain.InstanceBody{
				{Id: "instance-1", Name: "zcash-node-1", Type: domain.NodeZcash, ProjectId: "project-1"},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/instances/?project=project-1&type=zcash")

		if err := handlers.FindInstanceHandler(dbinstance)(c); err != nil {
			t.Fatal(err)
		}

		if !cmp.SliceEq(
			dbinstance.Calls.Find,
			[]domain.InstanceFindQuery{{ProjectId: "project-1", Type: domain.NodeZcash}},
		) {
			t.Errorf("Find did not call with the query: %+v", dbinstance.Calls.Find)
		}

		actual := []apiinst.Summary{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not an instance list: %s", err)
		}
		if len(actual) != 1 || actual[0].Id != "instance-1" {
			t.Errorf("unexpected response: %+v", actual)
		}
	})

	t.Run("an unknown type in the query responds 400", func(t *testing.T) {
		dbinstance := instmocks.NewInstanceInterface()

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/instances/?type=dogecoin")

		err := handlers.FindInstanceHandler(dbinstance)(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusBadRequest {
			t.Errorf("unexpected status code: %d (expected: %d)", echoErr.Code, http.StatusBadRequest)
		}
	})
}

func TestGetInstanceHandler(t *testing.T) {

	t.Run("it responds the instance with its attachments", func(t *testing.T) {
		lc := lcmocks.NewLifecycleInterface()
		lc.Impl.GetInstance = func(ctx context.Context, instanceId string) (domain.Instance, error) {
			return domain.Instance{
				InstanceBody: domain.InstanceBody{
					Id: instanceId, Name: "zcash-node-1", Type: domain.NodeZcash,
					ProjectId: "project-1",
					Status:    domain.StatusPending, State: domain.StateAvailable,
				},
				Project: &domain.Project{
					Id: "project-1", Name: "zcash-main", Owner: "user-1",
					Status: domain.StatusActive, State: domain.StateAvailable,
				},
				Resources: domain.KubernetesResources{
					Deployment: &domain.Resource{
						Id: "resource-1", OwnerId: instanceId,
						Kind: domain.KindDeployment, Name: "zcash-node-1", Status: "pending",
					},
				},
				Activities: []domain.Activity{
					{Id: "activity-1", OwnerId: instanceId, Operation: domain.OpCreate},
				},
				Permissions: []domain.Permission{
					{Id: "permission-1", OwnerId: instanceId, UserId: "user-2", Flags: domain.PermissionFlags{Read: true}},
				},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/instances/instance-1/")
		c.SetPath("/api/instances/:instance/")
		c.SetParamNames("instance")
		c.SetParamValues("instance-1")

		if err := handlers.GetInstanceHandler(lc, "instance")(c); err != nil {
			t.Fatal(err)
		}

		actual := apiinst.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not an instance detail: %s", err)
		}
		if actual.Id != "instance-1" || actual.Status != "pending" || actual.State != "available" {
			t.Errorf("unexpected instance: %+v", actual.Summary)
		}
		if actual.Project == nil || actual.Project.Id != "project-1" {
			t.Errorf("project is not attached: %+v", actual.Project)
		}
		if actual.Resources.Deployment == nil || actual.Resources.Deployment.Status != "pending" {
			t.Errorf("deployment record is not attached: %+v", actual.Resources)
		}
		if len(actual.Activities) != 1 || actual.Activities[0].Operation != "create" {
			t.Errorf("activities are not attached: %+v", actual.Activities)
		}
		if len(actual.Permissions) != 1 || !actual.Permissions[0].Flags.Read {
			t.Errorf("permissions are not attached: %+v", actual.Permissions)
		}
	})

	t.Run("an unknown instance responds 404", func(t *testing.T) {
		lc := lcmocks.NewLifecycleInterface()
		lc.Impl.GetInstance = func(ctx context.Context, instanceId string) (domain.Instance, error) {
			return domain.Instance{}, postgres.Missing{Table: "instance", Identity: instanceId}
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/instances/no-such-instance/")
		c.SetPath("/api/instances/:instance/")
		c.SetParamNames("instance")
		c.SetParamValues("no-such-instance")

		err := handlers.GetInstanceHandler(lc, "instance")(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusNotFound {
			t.Errorf("unexpected status code: %d (expected: %d)", echoErr.Code, http.StatusNotFound)
		}
	})
}

func TestUpdateInstanceHandler(t *testing.T) {

	t.Run("it rewrites the peer list and keeps the rest of the request", func(t *testing.T) {
		cpu := try.To(resource.ParseQuantity("500m")).OrFatal(t)

		dbinstance := instmocks.NewInstanceInterface()
		dbinstance.Impl.Get = func(ctx context.Context, instanceId string) (domain.InstanceBody, error) {
			return domain.InstanceBody{
				Id: instanceId, Name: "zcash-node-1", Type: domain.NodeZcash,
				ProjectId: "project-1",
				Request: &domain.ResourceRequest{
					Cpu:   &cpu,
					Peers: []string{"old-peer"},
				},
			}, nil
		}
		dbinstance.Impl.UpdateRequest = func(ctx context.Context, instanceId string, request *domain.ResourceRequest) (domain.InstanceBody, error) {
			return domain.InstanceBody{
				Id: instanceId, Name: "zcash-node-1", Type: domain.NodeZcash,
				ProjectId: "project-1", Request: request,
			}, nil
		}

		body := try.To(json.Marshal(apiinst.Update{Peers: []string{"zcash-node-2", "zcash-node-3"}})).OrFatal(t)

		e := echo.New()
		c, respRec := httptestutil.Put(
			e, "/api/instances/instance-1/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/instances/:instance/")
		c.SetParamNames("instance")
		c.SetParamValues("instance-1")

		if err := handlers.UpdateInstanceHandler(dbinstance, "instance")(c); err != nil {
			t.Fatal(err)
		}

		if dbinstance.Calls.UpdateRequest.Times() != 1 {
			t.Fatalf("UpdateRequest: called %d times (expected: 1)", dbinstance.Calls.UpdateRequest.Times())
		}
		updated := dbinstance.Calls.UpdateRequest[0]
		if updated.InstanceId != "instance-1" {
			t.Errorf("unexpected instance id: %s", updated.InstanceId)
		}
		if !cmp.SliceEq(updated.Request.Peers, []string{"zcash-node-2", "zcash-node-3"}) {
			t.Errorf("peers are not rewritten: %+v", updated.Request.Peers)
		}
		if updated.Request.Cpu == nil || !updated.Request.Cpu.Equal(cpu) {
			t.Errorf("cpu request should be kept: %+v", updated.Request.Cpu)
		}

		actual := apiinst.Summary{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not an instance summary: %s", err)
		}
		if !cmp.SliceEq(actual.Request.Peers, []string{"zcash-node-2", "zcash-node-3"}) {
			t.Errorf("unexpected response peers: %+v", actual.Request)
		}
	})

	t.Run("an unknown instance responds 404", func(t *testing.T) {
		dbinstance := instmocks.NewInstanceInterface()
		dbinstance.Impl.Get = func(ctx context.Context, instanceId string) (domain.InstanceBody, error) {
			return domain.InstanceBody{}, postgres.Missing{Table: "instance", Identity: instanceId}
		}

		body := try.To(json.Marshal(apiinst.Update{Peers: []string{}})).OrFatal(t)

		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/instances/no-such-instance/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/instances/:instance/")
		c.SetParamNames("instance")
		c.SetParamValues("no-such-instance")

		err := handlers.UpdateInstanceHandler(dbinstance, "instance")(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusNotFound {
			t.Errorf("unexpected status code: %d (expected: %d)", echoErr.Code, http.StatusNotFound)
		}
		if dbinstance.Calls.UpdateRequest.Times() != 0 {
			t.Errorf("UpdateRequest should not be called")
		}
	})
}

func TestDeleteInstanceHandler(t *testing.T) {

	t.Run("it requests teardown in instance scope", func(t *testing.T) {
		lc := lcmocks.NewLifecycleInterface()
		lc.Impl.RequestDelete = func(ctx context.Context, scope domain.OwnerScope, ownerId string) error {
			return nil
		}

		e := echo.New()
		c, respRec := httptestutil.Delete(e, "/api/instances/instance-1/")
		c.SetPath("/api/instances/:instance/")
		c.SetParamNames("instance")
		c.SetParamValues("instance-1")

		if err := handlers.DeleteInstanceHandler(lc, "instance")(c); err != nil {
			t.Fatal(err)
		}

		if !cmp.SliceEq(
			lc.Calls.RequestDelete,
			[]struct {
				Scope   domain.OwnerScope
				OwnerId string
			}{
				{Scope: domain.ScopeInstance, OwnerId: "instance-1"},
			},
		) {
			t.Errorf("RequestDelete did not call with correct args: %+v", lc.Calls.RequestDelete)
		}
		if respRec.Code != http.StatusNoContent {
			t.Errorf("unexpected status code: %d (expected: %d)", respRec.Code, http.StatusNoContent)
		}
	})
}
