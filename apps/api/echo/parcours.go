package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/scolarite/core/parcours"
)

var errParcoursNotFoundInCtx = errors.New("parcours object not found in echo.Context")

type parcoursApi struct {
	svc      *parcours.Service
	validate *validator.Validate
}

func registerParcoursAPI(g *echo.Group, svc *parcours.Service, validate *validator.Validate) {
	api := parcoursApi{
		svc:      svc,
		validate: validate,
	}

	pg := g.Group("/parcours")
	pg.GET("", api.query)
	pg.POST("", api.create)

	// detail endpoints
	dg := pg.Group("/:id", parcoursCtxMiddleware(api.svc))
	dg.GET("", api.retrieve)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *parcoursApi) create(ctx echo.Context) error {
	var data parcours.NewParcours
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewParcours")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	p, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating parcours")
	}
	return ctx.JSON(http.StatusCreated, p)
}

func (api *parcoursApi) query(ctx echo.Context) error {
	filter := new(parcours.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()
	ordering := new(Ordering)
	ordering.Bind(ctx)

	list, err := api.svc.Query(filter, ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying parcours")
	}
	if list == nil {
		list = []*parcours.Parcours{}
	}
	return ctx.JSON(http.StatusOK, list)
}

func (api *parcoursApi) retrieve(ctx echo.Context) error {
	p, ok := ctx.Get("object").(*parcours.Parcours)
	if !ok {
		return errors.Wrap(errParcoursNotFoundInCtx, "retrieving object from context")
	}
	return ctx.JSON(http.StatusOK, p)
}

// destroy deletes the Parcours; students and teaching units following it are detached, not deleted.
func (api *parcoursApi) destroy(ctx echo.Context) error {
	p, ok := ctx.Get("object").(*parcours.Parcours)
	if !ok {
		return errors.Wrap(errParcoursNotFoundInCtx, "retrieving object from context")
	}
	if err := api.svc.Delete(p.ID.Int); err != nil {
		return errors.Wrap(err, "deleting parcours")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func parcoursCtxMiddleware(svc *parcours.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := paramID(ctx)
			if err != nil {
				return err
			}
			p, err := svc.GetByID(id)
			if err != nil {
				if errors.Cause(err) == parcours.ErrNotFound {
					return errHttpNotFound
				}
				return errors.Wrap(err, "finding parcours by ID")
			}
			ctx.Set("object", p)
			return next(ctx)
		}
	}
}
