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
	apicat "github.com/zbitech/zbi-db/pkg/api/types/catalog"
	"github.com/zbitech/zbi-db/pkg/domain"
	catmocks "github.com/zbitech/zbi-db/pkg/domain/catalog/db/mock"
	"github.com/zbitech/zbi-db/pkg/domain/errors/dberrors/postgres"
	"github.com/zbitech/zbi-db/pkg/utils/try"

	"github.com/zbitech/zbi-db/cmd/zbi-db/handlers"
)

func TestPolicyHandlers(t *testing.T) {

	t.Run("GET responds the stored policy", func(t *testing.T) {
		dbcatalog := catmocks.NewCatalogInterface()
		dbcatalog.Impl.GetPolicy = func(ctx context.Context) (domain.PolicyInfo, error) {
			return domain.PolicyInfo{
				StorageClass:  "csi-hostpath-sc",
				SnapshotClass: "csi-hostpath-snapclass",
				DomainName:    "zbitech.local",
				Envoy:         domain.EnvoyConfig{Image: "envoyproxy/envoy:v1.20.0", Timeout: 2.5},
				Request:       domain.ResourceDefaults{Cpu: "250m", Memory: "256Mi", Storage: "10Gi"},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/config/policy/")

		if err := handlers.GetPolicyHandler(dbcatalog)(c); err != nil {
			t.Fatal(err)
		}

		actual := apicat.Policy{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not a policy: %s", err)
		}
		if actual.StorageClass != "csi-hostpath-sc" || actual.Envoy.Image != "envoyproxy/envoy:v1.20.0" {
			t.Errorf("unexpected response: %+v", actual)
		}
	})

	t.Run("GET responds 404 before the policy is seeded", func(t *testing.T) {
		dbcatalog := catmocks.NewCatalogInterface()
		dbcatalog.Impl.GetPolicy = func(ctx context.Context) (domain.PolicyInfo, error) {
			return domain.PolicyInfo{}, postgres.Missing{Table: "policy", Identity: "policy"}
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/config/policy/")

		err := handlers.GetPolicyHandler(dbcatalog)(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusNotFound {
			t.Errorf("unexpected status code: %d (expected: %d)", echoErr.Code, http.StatusNotFound)
		}
	})

	t.Run("PUT replaces the policy", func(t *testing.T) {
		dbcatalog := catmocks.NewCatalogInterface()
		dbcatalog.Impl.SetPolicy = func(ctx context.Context, policy domain.PolicyInfo) error {
			return nil
		}

		body := try.To(json.Marshal(apicat.Policy{
			StorageClass: "longhorn",
			Request:      apicat.RequestDefaults{Cpu: "500m", Memory: "512Mi", Storage: "20Gi"},
		})).OrFatal(t)

		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/config/policy/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)

		if err := handlers.SetPolicyHandler(dbcatalog)(c); err != nil {
			t.Fatal(err)
		}

		if dbcatalog.Calls.SetPolicy.Times() != 1 {
			t.Fatalf("SetPolicy: called %d times (expected: 1)", dbcatalog.Calls.SetPolicy.Times())
		}
		if stored := dbcatalog.Calls.SetPolicy[0]; stored.StorageClass != "longhorn" || stored.Request.Memory != "512Mi" {
			t.Errorf("SetPolicy did not call with the requested policy: %+v", stored)
		}
	})
}

func TestBlockchainHandlers(t *testing.T) {

	t.Run("POST registers a blockchain entry", func(t *testing.T) {
		dbcatalog := catmocks.NewCatalogInterface()
		dbcatalog.Impl.CreateBlockchain = func(ctx context.Context, name string, networks []string) (domain.BlockchainInfo, error) {
			return domain.BlockchainInfo{Name: name, Networks: networks}, nil
		}

		body := try.To(json.Marshal(apicat.BlockchainSpec{
			Name: "zcash", Networks: []string{"mainnet", "testnet"},
		})).OrFatal(t)

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/config/blockchains/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)

		if err := handlers.CreateBlockchainHandler(dbcatalog)(c); err != nil {
			t.Fatal(err)
		}

		actual := apicat.Blockchain{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not a blockchain: %s", err)
		}
		if actual.Name != "zcash" || len(actual.Networks) != 2 {
			t.Errorf("unexpected response: %+v", actual)
		}
	})

	t.Run("POST with a taken name responds 409", func(t *testing.T) {
		dbcatalog := catmocks.NewCatalogInterface()
		dbcatalog.Impl.CreateBlockchain = func(ctx context.Context, name string, networks []string) (domain.BlockchainInfo, error) {
			return domain.BlockchainInfo{}, postgres.Conflict{Table: "blockchain", Identity: name}
		}

		body := try.To(json.Marshal(apicat.BlockchainSpec{Name: "zcash"})).OrFatal(t)

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/config/blockchains/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)

		err := handlers.CreateBlockchainHandler(dbcatalog)(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusConflict {
			t.Errorf("unexpected status code: %d (expected: %d)", echoErr.Code, http.StatusConflict)
		}
	})

	t.Run("GET by name responds the entry with nodes and templates", func(t *testing.T) {
		dbcatalog := catmocks.NewCatalogInterface()
		dbcatalog.Impl.GetBlockchain = func(ctx context.Context, name string) (domain.BlockchainInfo, error) {
			return domain.BlockchainInfo{
				Name:     name,
				Networks: []string{"mainnet"},
				Nodes: []domain.NodeInfo{
					{Name: "zcash", Type: "zcash", Ports: map[string]int32{"service": 8233}},
				},
				Templates: map[string]string{"deployment": "kind: Deployment\n"},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/config/blockchains/zcash/")
		c.SetPath("/api/config/blockchains/:name/")
		c.SetParamNames("name")
		c.SetParamValues("zcash")

		if err := handlers.GetBlockchainHandler(dbcatalog, "name")(c); err != nil {
			t.Fatal(err)
		}

		actual := apicat.Blockchain{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not a blockchain: %s", err)
		}
		if len(actual.Nodes) != 1 || actual.Nodes[0].Ports["service"] != 8233 {
			t.Errorf("nodes are not attached: %+v", actual.Nodes)
		}
		if actual.Templates["deployment"] == "" {
			t.Errorf("templates are not attached: %+v", actual.Templates)
		}
	})
}

func TestNodeHandlers(t *testing.T) {

	t.Run("PUT stores the node under the name in the route", func(t *testing.T) {
		dbcatalog := catmocks.NewCatalogInterface()
		dbcatalog.Impl.UpsertNode = func(ctx context.Context, blockchain string, node domain.NodeInfo) error {
			return nil
		}

		// the body leaves name out; the route supplies it
		body := try.To(json.Marshal(apicat.Node{
			Type:  "zcash",
			Ports: map[string]int32{"service": 8233},
		})).OrFatal(t)

		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/config/blockchains/zcash/nodes/zcash-node/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/config/blockchains/:name/nodes/:node/")
		c.SetParamNames("name", "node")
		c.SetParamValues("zcash", "zcash-node")

		if err := handlers.UpsertNodeHandler(dbcatalog, "name", "node")(c); err != nil {
			t.Fatal(err)
		}

		if dbcatalog.Calls.UpsertNode.Times() != 1 {
			t.Fatalf("UpsertNode: called %d times (expected: 1)", dbcatalog.Calls.UpsertNode.Times())
		}
		stored := dbcatalog.Calls.UpsertNode[0]
		if stored.Blockchain != "zcash" || stored.Node.Name != "zcash-node" {
			t.Errorf("UpsertNode did not call with correct args: %+v", stored)
		}
	})

	t.Run("PUT against an unknown blockchain responds 404", func(t *testing.T) {
		dbcatalog := catmocks.NewCatalogInterface()
		dbcatalog.Impl.UpsertNode = func(ctx context.Context, blockchain string, node domain.NodeInfo) error {
			return postgres.Missing{Table: "blockchain", Identity: blockchain}
		}

		body := try.To(json.Marshal(apicat.Node{Type: "zcash"})).OrFatal(t)

		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/config/blockchains/no-such-chain/nodes/zcash-node/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/config/blockchains/:name/nodes/:node/")
		c.SetParamNames("name", "node")
		c.SetParamValues("no-such-chain", "zcash-node")

		err := handlers.UpsertNodeHandler(dbcatalog, "name", "node")(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusNotFound {
			t.Errorf("unexpected status code: %d (expected: %d)", echoErr.Code, http.StatusNotFound)
		}
	})

	t.Run("DELETE drops the node template", func(t *testing.T) {
		dbcatalog := catmocks.NewCatalogInterface()
		dbcatalog.Impl.RemoveNode = func(ctx context.Context, blockchain string, nodeName string) error {
			return nil
		}

		e := echo.New()
		c, respRec := httptestutil.Delete(e, "/api/config/blockchains/zcash/nodes/zcash-node/")
		c.SetPath("/api/config/blockchains/:name/nodes/:node/")
		c.SetParamNames("name", "node")
		c.SetParamValues("zcash", "zcash-node")

		if err := handlers.RemoveNodeHandler(dbcatalog, "name", "node")(c); err != nil {
			t.Fatal(err)
		}
		if respRec.Code != http.StatusNoContent {
			t.Errorf("unexpected status code: %d (expected: %d)", respRec.Code, http.StatusNoContent)
		}
	})
}

func TestGetTemplateHandler(t *testing.T) {

	t.Run("it responds the raw template text", func(t *testing.T) {
		dbcatalog := catmocks.NewCatalogInterface()
		dbcatalog.Impl.GetTemplate = func(ctx context.Context, blockchain string, name string) (string, error) {
			return "kind: Deployment\n", nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/config/blockchains/zcash/templates/deployment/")
		c.SetPath("/api/config/blockchains/:name/templates/:template/")
		c.SetParamNames("name", "template")
		c.SetParamValues("zcash", "deployment")

		if err := handlers.GetTemplateHandler(dbcatalog, "name", "template")(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Body.String() != "kind: Deployment\n" {
			t.Errorf("unexpected body: %s", respRec.Body.String())
		}
	})

	t.Run("an unknown template responds 404", func(t *testing.T) {
		dbcatalog := catmocks.NewCatalogInterface()
		dbcatalog.Impl.GetTemplate = func(ctx context.Context, blockchain string, name string) (string, error) {
			return "", postgres.Missing{Table: "blockchain_template", Identity: name}
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/config/blockchains/zcash/templates/no-such-template/")
		c.SetPath("/api/config/blockchains/:name/templates/:template/")
		c.SetParamNames("name", "template")
		c.SetParamValues("zcash", "no-such-template")

		err := handlers.GetTemplateHandler(dbcatalog, "name", "template")(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusNotFound {
			t.Errorf("unexpected status code: %d (expected: %d)", echoErr.Code, http.StatusNotFound)
		}
	})
}
