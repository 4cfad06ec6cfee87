package handlers

import (
	"context"

	"github.com/labstack/echo/v4"
	apierr "github.com/zbitech/zbi-db/pkg/api/types/errors"
)

// OwnerCheck reports whether an owner (project or instance) exists.
// It matches the Check methods of the project and instance stores.
type OwnerCheck func(ctx context.Context, ownerId string) (bool, error)

// CheckOwner guards the sub-resource routes: unknown owners get 404
// before any request body is looked at.
func CheckOwner(check OwnerCheck, paramKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := check(c.Request().Context(), c.Param(paramKey))
			if err != nil {
				return apierr.InternalServerError(err)
			}
			if !ok {
				return apierr.NotFound()
			}
			return next(c)
		}
	}
}
