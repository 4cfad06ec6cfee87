package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apicat "github.com/zbitech/zbi-db/pkg/api/types/catalog"
	apierr "github.com/zbitech/zbi-db/pkg/api/types/errors"
	kpgcat "github.com/zbitech/zbi-db/pkg/domain/catalog/db"
	domerr "github.com/zbitech/zbi-db/pkg/domain/errors"
	"github.com/zbitech/zbi-db/pkg/utils/slices"
)

func GetPolicyHandler(dbCatalog kpgcat.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		policy, err := dbCatalog.GetPolicy(ctx)
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apicat.ComposePolicy(policy))
	}
}

func SetPolicyHandler(dbCatalog kpgcat.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		policy := new(apicat.Policy)
		if err := decodeJson(c, policy); err != nil {
			return err
		}

		if err := dbCatalog.SetPolicy(ctx, policy.AsPolicy()); err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, policy)
	}
}

func CreateBlockchainHandler(dbCatalog kpgcat.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec := new(apicat.BlockchainSpec)
		if err := decodeJson(c, spec); err != nil {
			return err
		}
		if spec.Name == "" {
			return apierr.BadRequest("name is required", nil)
		}

		blockchain, err := dbCatalog.CreateBlockchain(ctx, spec.Name, spec.Networks)
		if err != nil {
			if errors.Is(err, domerr.ErrExists) {
				return apierr.Conflict("blockchain is already registered", apierr.WithError(err))
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apicat.ComposeBlockchain(blockchain))
	}
}

func ListBlockchainHandler(dbCatalog kpgcat.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		blockchains, err := dbCatalog.ListBlockchains(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(blockchains, apicat.ComposeBlockchain))
	}
}

func GetBlockchainHandler(dbCatalog kpgcat.Interface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		blockchain, err := dbCatalog.GetBlockchain(ctx, c.Param(paramKey))
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apicat.ComposeBlockchain(blockchain))
	}
}

func UpsertNodeHandler(dbCatalog kpgcat.Interface, paramKey string, nodeParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		node := new(apicat.Node)
		if err := decodeJson(c, node); err != nil {
			return err
		}
		// the route names the node; the body may leave it out
		node.Name = c.Param(nodeParamKey)

		if err := dbCatalog.UpsertNode(ctx, c.Param(paramKey), node.AsNode()); err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, node)
	}
}

func GetNodeHandler(dbCatalog kpgcat.Interface, paramKey string, nodeParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		node, err := dbCatalog.GetNode(ctx, c.Param(paramKey), c.Param(nodeParamKey))
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apicat.ComposeNode(node))
	}
}

func RemoveNodeHandler(dbCatalog kpgcat.Interface, paramKey string, nodeParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := dbCatalog.RemoveNode(ctx, c.Param(paramKey), c.Param(nodeParamKey)); err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

// GetTemplateHandler responds the raw manifest template text as-is;
// rendering happens in the consumer, not here.
func GetTemplateHandler(dbCatalog kpgcat.Interface, paramKey string, templateParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		body, err := dbCatalog.GetTemplate(ctx, c.Param(paramKey), c.Param(templateParamKey))
		if err != nil {
			if errors.Is(err, domerr.ErrMissing) {
				return apierr.NotFound()
			}
			return apierr.InternalServerError(err)
		}

		return c.Blob(http.StatusOK, "application/yaml", []byte(body))
	}
}
