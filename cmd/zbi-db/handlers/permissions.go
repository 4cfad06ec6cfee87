package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/zbitech/zbi-db/pkg/api/types/errors"
	apiperm "github.com/zbitech/zbi-db/pkg/api/types/permissions"
	domerr "github.com/zbitech/zbi-db/pkg/domain/errors"
	kpgperm "github.com/zbitech/zbi-db/pkg/domain/permission/db"
	"github.com/zbitech/zbi-db/pkg/utils/slices"
)

func ListPermissionHandler(dbPermission kpgperm.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		permissions, err := dbPermission.List(ctx, c.Param(paramKey))
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(permissions, apiperm.ComposeDetail))
	}
}

func GetPermissionHandler(dbPermission kpgperm.Interface, paramKey string, userParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		permission, err := dbPermission.Get(ctx, c.Param(paramKey), c.Param(userParamKey))
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiperm.ComposeDetail(permission))
	}
}

// SetPermissionHandler grants or replaces a user's capabilities on the
// owner. Setting twice leaves one record holding the later flags.
func SetPermissionHandler(dbPermission kpgperm.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := new(apiperm.Spec)
		if err := decodeJson(c, spec); err != nil {
			return err
		}
		if spec.UserId == "" {
			return apierr.BadRequest("userId is required", nil)
		}

		permission, err := dbPermission.Set(ctx, c.Param(paramKey), spec.UserId, spec.Flags.AsFlags())
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiperm.ComposeDetail(permission))
	}
}

// RemovePermissionHandler revokes the user's record on the owner.
// Revoking a user who was never granted anything is 404.
func RemovePermissionHandler(dbPermission kpgperm.Interface, paramKey string, userParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := dbPermission.Remove(ctx, c.Param(paramKey), c.Param(userParamKey)); err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
