package frontend_test

import (
	"testing"

	kcf "github.com/zbitech/zbi-db/pkg/configs/frontend"
)

func TestLoadFrontendConfig(t *testing.T) {

	t.Run("it can be created from a config file", func(t *testing.T) {
		result, err := kcf.LoadFrontendConfig("./testdata/config.yaml")

		if err != nil {
			t.Errorf("failed to parse config.: %v", err)
		}
		expectedURI := "postgres://zbi-test-pgdb-svc:32555/zbi"
		if result.DBURI != expectedURI {
			t.Errorf("unmatch host:%s, expected:%s", result.DBURI, expectedURI)
		}
		expectedServerPort := "8080"
		if result.ServerPort != expectedServerPort {
			t.Errorf("unmatch serverport:%s, expected:%s", result.ServerPort, expectedServerPort)
		}
		expectedSchema := "/opt/zbi/schema"
		if result.SchemaRepository != expectedSchema {
			t.Errorf("unmatch schemarepository:%s, expected:%s", result.SchemaRepository, expectedSchema)
		}
		expectedSeed := "/opt/zbi/seed"
		if result.SeedDirectory != expectedSeed {
			t.Errorf("unmatch seeddirectory:%s, expected:%s", result.SeedDirectory, expectedSeed)
		}
	})

}
