package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	kcf "github.com/zbitech/zbi-db/pkg/configs/frontend"
	"github.com/zbitech/zbi-db/pkg/domain"
	"github.com/zbitech/zbi-db/pkg/domain/catalog/seed"
	"github.com/zbitech/zbi-db/pkg/domain/lifecycle"
	zbidb "github.com/zbitech/zbi-db/pkg/domain/zbi/db"
	zbipg "github.com/zbitech/zbi-db/pkg/domain/zbi/db/postgres"
	"github.com/zbitech/zbi-db/pkg/echoutil"
	"github.com/zbitech/zbi-db/pkg/utils/filewatch"

	"github.com/zbitech/zbi-db/cmd/zbi-db/handlers"
)

func main() {

	configPath := flag.String("config-path", "", "frontend config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	flag.Parse()

	e := echo.New()
	e.Pre(middleware.AddTrailingSlash())

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.WithScope())
	e.Use(echoutil.LogHandlerFunc)

	// read configfile
	conf, err := kcf.LoadFrontendConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}
	if conf.LogLevel != "" {
		echoutil.SetLevel(e, conf.LogLevel)
	}

	{
		// restart on config change; the deployment restarts the pod.
		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), *configPath)
		if err != nil {
			log.Fatalf("can not watch configration: %s", err)
		}
		defer cancel()
		context.AfterFunc(ctx, func() {
			log.Println("config file is updated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by config update: %s", err)
			}
		})
	}

	ctx := context.Background()
	db, err := getDBAccesor(ctx, conf)
	if err != nil {
		log.Fatalf("can not connect to database: %s", err.Error())
	}
	defer db.Close()

	if err := db.Schema().Upgrade(ctx); err != nil {
		log.Fatalf("can not upgrade database schema: %s", err)
	}
	{
		// quit when a newer schema lands in the repository.
		sctx, cancel := db.Schema().Context(ctx)
		defer cancel()
		context.AfterFunc(sctx, func() {
			log.Println("database schema is updated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by schema update: %s", err)
			}
		})
	}

	if conf.SeedDirectory != "" {
		if err := seed.Run(ctx, conf.SeedDirectory, db.Catalog(), db.User()); err != nil {
			log.Fatalf("can not seed catalog: %s", err)
		}
	}

	lc := lifecycle.New(
		db.Project(), db.Instance(), db.Resource(), db.Activity(), db.Permission(),
	)

	// handlers
	{
		project := "project"
		checkProject := handlers.CheckOwner(db.Project().Check, project)

		e.POST("/api/projects/", handlers.CreateProjectHandler(db.Project()))
		e.GET("/api/projects/", handlers.FindProjectHandler(db.Project()))
		e.GET("/api/projects/:project/", handlers.GetProjectHandler(db.Project(), project))
		e.PUT("/api/projects/:project/", handlers.UpdateProjectHandler(db.Project(), project))
		e.DELETE("/api/projects/:project/", handlers.DeleteProjectHandler(lc, project))
		e.DELETE("/api/projects/:project/purge/", handlers.PurgeProjectHandler(lc, project))

		e.POST(
			"/api/projects/:project/instances/",
			handlers.CreateInstanceHandler(db.Instance(), project),
			checkProject,
		)

		e.GET("/api/projects/:project/resources/", handlers.GetResourcesHandler(lc, db.Resource(), project), checkProject)
		e.PUT("/api/projects/:project/resources/", handlers.UpdateResourceHandler(lc, domain.ScopeProject, project), checkProject)
		e.DELETE("/api/projects/:project/resources/", handlers.DeleteResourceHandler(db.Resource(), project), checkProject)

		e.GET("/api/projects/:project/activities/", handlers.ListActivityHandler(db.Activity(), project), checkProject)
		e.POST("/api/projects/:project/activities/", handlers.AddActivityHandler(lc, project), checkProject)

		e.GET("/api/projects/:project/permissions/", handlers.ListPermissionHandler(db.Permission(), project), checkProject)
		e.PUT("/api/projects/:project/permissions/", handlers.SetPermissionHandler(db.Permission(), project), checkProject)
		e.GET("/api/projects/:project/permissions/:user/", handlers.GetPermissionHandler(db.Permission(), project, "user"), checkProject)
		e.DELETE("/api/projects/:project/permissions/:user/", handlers.RemovePermissionHandler(db.Permission(), project, "user"), checkProject)
	}

	{
		instance := "instance"
		checkInstance := handlers.CheckOwner(db.Instance().Check, instance)

		e.GET("/api/instances/", handlers.FindInstanceHandler(db.Instance()))
		e.GET("/api/instances/:instance/", handlers.GetInstanceHandler(lc, instance))
		e.PUT("/api/instances/:instance/", handlers.UpdateInstanceHandler(db.Instance(), instance))
		e.DELETE("/api/instances/:instance/", handlers.DeleteInstanceHandler(lc, instance))
		e.DELETE("/api/instances/:instance/purge/", handlers.PurgeInstanceHandler(lc, instance))

		e.GET("/api/instances/:instance/resources/", handlers.GetResourcesHandler(lc, db.Resource(), instance), checkInstance)
		e.PUT("/api/instances/:instance/resources/", handlers.UpdateResourceHandler(lc, domain.ScopeInstance, instance), checkInstance)
		e.DELETE("/api/instances/:instance/resources/", handlers.DeleteResourceHandler(db.Resource(), instance), checkInstance)

		e.GET("/api/instances/:instance/activities/", handlers.ListActivityHandler(db.Activity(), instance), checkInstance)
		e.POST("/api/instances/:instance/activities/", handlers.AddActivityHandler(lc, instance), checkInstance)

		e.GET("/api/instances/:instance/permissions/", handlers.ListPermissionHandler(db.Permission(), instance), checkInstance)
		e.PUT("/api/instances/:instance/permissions/", handlers.SetPermissionHandler(db.Permission(), instance), checkInstance)
		e.GET("/api/instances/:instance/permissions/:user/", handlers.GetPermissionHandler(db.Permission(), instance, "user"), checkInstance)
		e.DELETE("/api/instances/:instance/permissions/:user/", handlers.RemovePermissionHandler(db.Permission(), instance, "user"), checkInstance)
	}

	{
		user := "user"

		e.POST("/api/users/", handlers.RegisterUserHandler(db.User()))
		e.GET("/api/users/", handlers.FindUserHandler(db.User()))
		e.GET("/api/users/:user/", handlers.GetUserHandler(db.User(), user))
		e.PUT("/api/users/:user/reactivate/", handlers.SetUserActiveHandler(db.User(), user, true))
		e.PUT("/api/users/:user/deactivate/", handlers.SetUserActiveHandler(db.User(), user, false))
	}

	{
		e.GET("/api/config/policy/", handlers.GetPolicyHandler(db.Catalog()))
		e.PUT("/api/config/policy/", handlers.SetPolicyHandler(db.Catalog()))

		e.POST("/api/config/blockchains/", handlers.CreateBlockchainHandler(db.Catalog()))
		e.GET("/api/config/blockchains/", handlers.ListBlockchainHandler(db.Catalog()))
		e.GET("/api/config/blockchains/:name/", handlers.GetBlockchainHandler(db.Catalog(), "name"))

		e.PUT("/api/config/blockchains/:name/nodes/:node/", handlers.UpsertNodeHandler(db.Catalog(), "name", "node"))
		e.GET("/api/config/blockchains/:name/nodes/:node/", handlers.GetNodeHandler(db.Catalog(), "name", "node"))
		e.DELETE("/api/config/blockchains/:name/nodes/:node/", handlers.RemoveNodeHandler(db.Catalog(), "name", "node"))

		e.GET("/api/config/blockchains/:name/templates/:template/", handlers.GetTemplateHandler(db.Catalog(), "name", "template"))
	}

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	cert, key := *pcert, *pkey
	if cert != "" && key != "" {
		e.Logger.Fatal(e.StartTLS(":"+conf.ServerPort, cert, key))
	} else {
		e.Logger.Fatal(e.Start(":" + conf.ServerPort))
	}
}

func getDBAccesor(ctx context.Context, conf *kcf.FrontendConfig) (zbidb.ZBIDatabase, error) {
	options := []zbipg.Option{}
	if conf.SchemaRepository != "" {
		options = append(options, zbipg.WithSchemaRepository(conf.SchemaRepository))
	}
	return zbipg.New(ctx, conf.DBURI, options...)
}
