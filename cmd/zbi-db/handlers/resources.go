package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/zbitech/zbi-db/pkg/api/types/errors"
	apires "github.com/zbitech/zbi-db/pkg/api/types/resources"
	"github.com/zbitech/zbi-db/pkg/domain"
	domerr "github.com/zbitech/zbi-db/pkg/domain/errors"
	"github.com/zbitech/zbi-db/pkg/domain/lifecycle"
	kpgres "github.com/zbitech/zbi-db/pkg/domain/resource/db"
)

// GetResourcesHandler responds the owner's typed resource bundle.
//
// With ?kind= (and ?name= for repeatable kinds) it responds the single
// matching record instead.
func GetResourcesHandler(lc lifecycle.Interface, dbResource kpgres.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		ownerId := c.Param(paramKey)

		if kindParam := c.QueryParam("kind"); kindParam != "" {
			kind, err := domain.AsResourceKind(kindParam)
			if err != nil {
				return apierr.BadRequest("unknown resource kind", err)
			}
			res, err := dbResource.Get(ctx, ownerId, kind, c.QueryParam("name"))
			if err != nil {
				if errors.Is(err, domerr.ErrMissing) {
					return apierr.NotFound()
				}
				return apierr.InternalServerError(err)
			}
			return c.JSON(http.StatusOK, apires.ComposeDetail(res))
		}

		bundle, err := lc.GetResources(ctx, ownerId)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apires.ComposeBundle(bundle))
	}
}

// UpdateResourceHandler records a reported Kubernetes object state and,
// for the owner's trigger kind, transits the owner's status/state.
func UpdateResourceHandler(lc lifecycle.Interface, scope domain.OwnerScope, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		report := new(apires.Report)
		if err := decodeJson(c, report); err != nil {
			return err
		}
		kind, err := domain.AsResourceKind(report.Kind)
		if err != nil {
			return apierr.BadRequest("unknown resource kind", err)
		}
		if report.Name == "" {
			return apierr.BadRequest("name is required", nil)
		}

		res, err := lc.UpdateResource(ctx, scope, c.Param(paramKey), kpgres.ResourceSpec{
			Kind:       kind,
			Name:       report.Name,
			Status:     report.Status,
			Properties: report.Properties,
		})
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apires.ComposeDetail(res))
	}
}

// DeleteResourceHandler drops one resource record, picked by ?kind=
// (and ?name= for repeatable kinds).
func DeleteResourceHandler(dbResource kpgres.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		kind, err := domain.AsResourceKind(c.QueryParam("kind"))
		if err != nil {
			return apierr.BadRequest("unknown resource kind", err)
		}

		if err := dbResource.Delete(ctx, c.Param(paramKey), kind, c.QueryParam("name")); err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
