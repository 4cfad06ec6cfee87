package db

import (
	kact "github.com/zbitech/zbi-db/pkg/domain/activity/db"
	kcat "github.com/zbitech/zbi-db/pkg/domain/catalog/db"
	kinst "github.com/zbitech/zbi-db/pkg/domain/instance/db"
	kperm "github.com/zbitech/zbi-db/pkg/domain/permission/db"
	kproj "github.com/zbitech/zbi-db/pkg/domain/project/db"
	kres "github.com/zbitech/zbi-db/pkg/domain/resource/db"
	kschema "github.com/zbitech/zbi-db/pkg/domain/schema/db"
	kuser "github.com/zbitech/zbi-db/pkg/domain/user/db"
)

type ZBIDatabase interface {
	Project() kproj.Interface
	Instance() kinst.Interface
	Resource() kres.Interface
	Activity() kact.Interface
	Permission() kperm.Interface
	Catalog() kcat.Interface
	User() kuser.Interface
	Schema() kschema.SchemaInterface
	Close() error
}
