package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/zbitech/zbi-db/pkg/api/types/errors"
	apiinst "github.com/zbitech/zbi-db/pkg/api/types/instances"
	"github.com/zbitech/zbi-db/pkg/domain"
	domerr "github.com/zbitech/zbi-db/pkg/domain/errors"
	kpginst "github.com/zbitech/zbi-db/pkg/domain/instance/db"
	"github.com/zbitech/zbi-db/pkg/domain/lifecycle"
	"github.com/zbitech/zbi-db/pkg/utils/slices"
)

// CreateInstanceHandler registers an instance under the project named
// in the route. The project's existence is the route guard's concern.
func CreateInstanceHandler(dbInstance kpginst.Interface, projectParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := new(apiinst.Spec)
		if err := decodeJson(c, spec); err != nil {
			return err
		}
		if spec.Name == "" {
			return apierr.BadRequest("name is required", nil)
		}
		nodeType, err := domain.AsNodeKind(spec.Type)
		if err != nil {
			return apierr.BadRequest("unknown instance type", err)
		}
		request, err := spec.Request.AsRequest()
		if err != nil {
			return apierr.BadRequest("malformed resource request", err)
		}

		instance, err := dbInstance.Create(ctx, kpginst.InstanceSpec{
			ProjectId: c.Param(projectParamKey),
			Name:      spec.Name,
			Type:      nodeType,
			Request:   request,
		})
		if err != nil {
			if errors.Is(err, domerr.ErrExists) {
				return apierr.Conflict("instance name is already used in the project", apierr.WithError(err))
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiinst.ComposeSummary(instance))
	}
}

func FindInstanceHandler(dbInstance kpginst.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		query := domain.InstanceFindQuery{
			ProjectId: c.QueryParam("project"),
			Name:      c.QueryParam("name"),
		}
		if typ := c.QueryParam("type"); typ != "" {
			nodeType, err := domain.AsNodeKind(typ)
			if err != nil {
				return apierr.BadRequest("unknown instance type", err)
			}
			query.Type = nodeType
		}

		instances, err := dbInstance.Find(ctx, query)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(instances, apiinst.ComposeSummary))
	}
}

// GetInstanceHandler responds the instance with its attachments: the
// owning project, the resource bundle, activities and permissions.
func GetInstanceHandler(lc lifecycle.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		instance, err := lc.GetInstance(ctx, c.Param(paramKey))
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiinst.ComposeDetail(instance))
	}
}

// UpdateInstanceHandler rewrites the instance's peer list. The rest of
// the provisioning request is kept as stored.
func UpdateInstanceHandler(dbInstance kpginst.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		instanceId := c.Param(paramKey)

		update := new(apiinst.Update)
		if err := decodeJson(c, update); err != nil {
			return err
		}

		current, err := dbInstance.Get(ctx, instanceId)
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		request := current.Request
		if request == nil {
			request = &domain.ResourceRequest{}
		}
		request.Peers = update.Peers

		instance, err := dbInstance.UpdateRequest(ctx, instanceId, request)
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiinst.ComposeSummary(instance))
	}
}

func DeleteInstanceHandler(lc lifecycle.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := lc.RequestDelete(ctx, domain.ScopeInstance, c.Param(paramKey)); err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func PurgeInstanceHandler(lc lifecycle.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := lc.Purge(ctx, domain.ScopeInstance, c.Param(paramKey)); err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
