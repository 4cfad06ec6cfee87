package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	kpool "github.com/zbitech/zbi-db/pkg/conn/db/postgres/pool"
	kact "github.com/zbitech/zbi-db/pkg/domain/activity/db"
	kpgact "github.com/zbitech/zbi-db/pkg/domain/activity/db/postgres"
	kcat "github.com/zbitech/zbi-db/pkg/domain/catalog/db"
	kpgcat "github.com/zbitech/zbi-db/pkg/domain/catalog/db/postgres"
	kinst "github.com/zbitech/zbi-db/pkg/domain/instance/db"
	kpginst "github.com/zbitech/zbi-db/pkg/domain/instance/db/postgres"
	kperm "github.com/zbitech/zbi-db/pkg/domain/permission/db"
	kpgperm "github.com/zbitech/zbi-db/pkg/domain/permission/db/postgres"
	kproj "github.com/zbitech/zbi-db/pkg/domain/project/db"
	kpgproj "github.com/zbitech/zbi-db/pkg/domain/project/db/postgres"
	kres "github.com/zbitech/zbi-db/pkg/domain/resource/db"
	kpgres "github.com/zbitech/zbi-db/pkg/domain/resource/db/postgres"
	kschema "github.com/zbitech/zbi-db/pkg/domain/schema/db"
	kpgschema "github.com/zbitech/zbi-db/pkg/domain/schema/db/postgres"
	kuser "github.com/zbitech/zbi-db/pkg/domain/user/db"
	kpguser "github.com/zbitech/zbi-db/pkg/domain/user/db/postgres"
	dbInterface "github.com/zbitech/zbi-db/pkg/domain/zbi/db"
	xe "github.com/zbitech/zbi-db/pkg/errors"
)

type zbiDBPostgres struct {
	pool        *pgxpool.Pool
	projects    kproj.Interface
	instances   kinst.Interface
	resources   kres.Interface
	activities  kact.Interface
	permissions kperm.Interface
	catalog     kcat.Interface
	users       kuser.Interface
	schema      kschema.SchemaInterface
}

type Config struct {
	SchemaRepository string
}

func DefaultConfig() Config {
	return Config{}
}

type Option func(*Config) *Config

func WithSchemaRepository(repository string) Option {
	return func(c *Config) *Config {
		c.SchemaRepository = repository
		return c
	}
}

func New(
	ctx context.Context,
	url string,
	options ...Option,
) (dbInterface.ZBIDatabase, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	c := DefaultConfig()
	for _, option := range options {
		c = *option(&c)
	}

	p := kpool.Wrap(pool)
	var schema kschema.SchemaInterface = kpgschema.Null()
	if c.SchemaRepository != "" {
		schema = kpgschema.New(p, c.SchemaRepository)
	}

	return &zbiDBPostgres{
		pool:        pool,
		projects:    kpgproj.New(p),
		instances:   kpginst.New(p),
		resources:   kpgres.New(p),
		activities:  kpgact.New(p),
		permissions: kpgperm.New(p),
		catalog:     kpgcat.New(p),
		users:       kpguser.New(p),
		schema:      schema,
	}, nil
}

func (z *zbiDBPostgres) Project() kproj.Interface {
	return z.projects
}

func (z *zbiDBPostgres) Instance() kinst.Interface {
	return z.instances
}

func (z *zbiDBPostgres) Resource() kres.Interface {
	return z.resources
}

func (z *zbiDBPostgres) Activity() kact.Interface {
	return z.activities
}

func (z *zbiDBPostgres) Permission() kperm.Interface {
	return z.permissions
}

func (z *zbiDBPostgres) Catalog() kcat.Interface {
	return z.catalog
}

func (z *zbiDBPostgres) User() kuser.Interface {
	return z.users
}

func (z *zbiDBPostgres) Schema() kschema.SchemaInterface {
	return z.schema
}

func (z *zbiDBPostgres) Close() error {
	z.pool.Close()
	return nil
}
