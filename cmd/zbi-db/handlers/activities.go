package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apiact "github.com/zbitech/zbi-db/pkg/api/types/activities"
	apierr "github.com/zbitech/zbi-db/pkg/api/types/errors"
	"github.com/zbitech/zbi-db/pkg/domain"
	kpgact "github.com/zbitech/zbi-db/pkg/domain/activity/db"
	domerr "github.com/zbitech/zbi-db/pkg/domain/errors"
	"github.com/zbitech/zbi-db/pkg/domain/lifecycle"
	"github.com/zbitech/zbi-db/pkg/utils/slices"
)

func ListActivityHandler(dbActivity kpgact.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		activities, err := dbActivity.List(ctx, c.Param(paramKey))
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(activities, apiact.ComposeDetail))
	}
}

type activityRequest struct {
	Operation string `json:"operation"`
}

// AddActivityHandler appends an operation record for the owner and
// responds the owner's whole history, oldest first.
func AddActivityHandler(lc lifecycle.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := new(activityRequest)
		if err := decodeJson(c, req); err != nil {
			return err
		}
		op, err := domain.AsOperation(req.Operation)
		if err != nil {
			return apierr.BadRequest("unknown operation", err)
		}

		activities, err := lc.AddActivity(ctx, c.Param(paramKey), op)
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(activities, apiact.ComposeDetail))
	}
}
