package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/zbitech/zbi-db/pkg/api/types/errors"
	apiuser "github.com/zbitech/zbi-db/pkg/api/types/users"
	"github.com/zbitech/zbi-db/pkg/domain"
	domerr "github.com/zbitech/zbi-db/pkg/domain/errors"
	kpguser "github.com/zbitech/zbi-db/pkg/domain/user/db"
	"github.com/zbitech/zbi-db/pkg/utils/slices"
)

func RegisterUserHandler(dbUser kpguser.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := new(apiuser.Spec)
		if err := decodeJson(c, spec); err != nil {
			return err
		}
		if spec.Email == "" || spec.Name == "" {
			return apierr.BadRequest("email and name are required", nil)
		}
		role, err := domain.AsRole(spec.Role)
		if err != nil {
			return apierr.BadRequest("unknown role", err)
		}

		user, err := dbUser.Register(ctx, kpguser.UserSpec{
			Email:    spec.Email,
			Name:     spec.Name,
			Role:     role,
			Provider: spec.Provider,
		})
		if err != nil {
			if errors.Is(err, domerr.ErrExists) {
				return apierr.Conflict("email is already registered", apierr.WithError(err))
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiuser.ComposeDetail(user))
	}
}

// FindUserHandler lists accounts. With ?email= it responds the single
// matching account, 404 when the address is unknown.
func FindUserHandler(dbUser kpguser.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if email := c.QueryParam("email"); email != "" {
			user, err := dbUser.GetByEmail(ctx, email)
			if err != nil {
				if errors.Is(err, domerr.ErrMissing) {
					return apierr.NotFound()
				}
				return apierr.InternalServerError(err)
			}
			return c.JSON(http.StatusOK, apiuser.ComposeDetail(user))
		}

		users, err := dbUser.List(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(users, apiuser.ComposeDetail))
	}
}

func GetUserHandler(dbUser kpguser.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		user, err := dbUser.Get(ctx, c.Param(paramKey))
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiuser.ComposeDetail(user))
	}
}

// SetUserActiveHandler flips an account's activation to the given
// value. Registered behind both the reactivate and deactivate routes.
func SetUserActiveHandler(dbUser kpguser.Interface, paramKey string, active bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := dbUser.SetActive(ctx, c.Param(paramKey), active); err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
