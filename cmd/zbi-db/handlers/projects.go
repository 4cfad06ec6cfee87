package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	apierr "github.com/zbitech/zbi-db/pkg/api/types/errors"
	apiproj "github.com/zbitech/zbi-db/pkg/api/types/projects"
	"github.com/zbitech/zbi-db/pkg/domain"
	domerr "github.com/zbitech/zbi-db/pkg/domain/errors"
	"github.com/zbitech/zbi-db/pkg/domain/lifecycle"
	kpgproj "github.com/zbitech/zbi-db/pkg/domain/project/db"
	"github.com/zbitech/zbi-db/pkg/utils/slices"
)

func decodeJson(c echo.Context, into interface{}) error {
	req := c.Request()
	if ctyp := strings.ToLower(req.Header.Get("content-type")); !strings.HasPrefix(ctyp, "application/json") {
		return apierr.BadRequest("unexpected content type. it should be application/json", nil)
	}
	if err := json.NewDecoder(req.Body).Decode(into); err != nil {
		return apierr.BadRequest("can not understand the requested json", err)
	}
	return nil
}

func CreateProjectHandler(dbProject kpgproj.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := new(apiproj.Spec)
		if err := decodeJson(c, spec); err != nil {
			return err
		}
		if spec.Name == "" || spec.Owner == "" {
			return apierr.BadRequest("name and owner are required", nil)
		}
		network, err := domain.AsNetworkKind(spec.Network)
		if err != nil {
			return apierr.BadRequest("unknown network", err)
		}

		project, err := dbProject.Create(ctx, kpgproj.ProjectSpec{
			Name:        spec.Name,
			Owner:       spec.Owner,
			Blockchain:  spec.Blockchain,
			Network:     network,
			Description: spec.Description,
		})
		if err != nil {
			if errors.Is(err, domerr.ErrExists) {
				return apierr.Conflict("project name is already used", apierr.WithError(err))
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiproj.ComposeDetail(project))
	}
}

func FindProjectHandler(dbProject kpgproj.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		projects, err := dbProject.Find(ctx, domain.ProjectFindQuery{
			Name:  c.QueryParam("name"),
			Owner: c.QueryParam("owner"),
		})
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(projects, apiproj.ComposeDetail))
	}
}

func GetProjectHandler(dbProject kpgproj.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		project, err := dbProject.Get(ctx, c.Param(paramKey))
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiproj.ComposeDetail(project))
	}
}

func UpdateProjectHandler(dbProject kpgproj.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		update := new(apiproj.Update)
		if err := decodeJson(c, update); err != nil {
			return err
		}

		project, err := dbProject.UpdateDescription(ctx, c.Param(paramKey), update.Description)
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiproj.ComposeDetail(project))
	}
}

// DeleteProjectHandler requests teardown: the project row stays, marked
// status "deleted" / state "deleting", until it is purged.
func DeleteProjectHandler(lc lifecycle.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := lc.RequestDelete(ctx, domain.ScopeProject, c.Param(paramKey)); err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func PurgeProjectHandler(lc lifecycle.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := lc.Purge(ctx, domain.ScopeProject, c.Param(paramKey)); err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
