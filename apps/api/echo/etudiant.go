package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/scolarite/core/etudiant"
)

var errEtudiantNotFoundInCtx = errors.New("etudiant object not found in echo.Context")

type etudiantApi struct {
	svc      *etudiant.Service
	validate *validator.Validate
}

func registerEtudiantAPI(g *echo.Group, svc *etudiant.Service, validate *validator.Validate) {
	api := etudiantApi{
		svc:      svc,
		validate: validate,
	}

	eg := g.Group("/etudiants")
	eg.GET("", api.query)
	eg.POST("", api.create)
	eg.DELETE("", api.destroyMultiple)

	// detail endpoints
	dg := eg.Group("/:id", etudiantCtxMiddleware(api.svc))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *etudiantApi) create(ctx echo.Context) error {
	var data etudiant.NewEtudiant
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEtudiant")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	e, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating etudiant")
	}
	return ctx.JSON(http.StatusCreated, e)
}

func (api *etudiantApi) query(ctx echo.Context) error {
	filter := new(etudiant.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()
	ordering := new(Ordering)
	ordering.Bind(ctx)

	list, err := api.svc.Query(filter, ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying etudiants")
	}
	if list == nil {
		list = []etudiant.Etudiant{}
	}
	return ctx.JSON(http.StatusOK, list)
}

func (api *etudiantApi) retrieve(ctx echo.Context) error {
	e, ok := ctx.Get("object").(etudiant.Etudiant)
	if !ok {
		return errors.Wrap(errEtudiantNotFoundInCtx, "retrieving object from context")
	}
	return ctx.JSON(http.StatusOK, e)
}

func (api *etudiantApi) update(ctx echo.Context) error {
	e, ok := ctx.Get("object").(etudiant.Etudiant)
	if !ok {
		return errors.Wrap(errEtudiantNotFoundInCtx, "retrieving object from context")
	}

	var data etudiant.UpdateEtudiant
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEtudiant")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	e, err := api.svc.Update(e.ID.Int, data)
	if err != nil {
		if errors.Cause(err) == etudiant.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating etudiant")
	}
	return ctx.JSON(http.StatusOK, e)
}

func (api *etudiantApi) destroy(ctx echo.Context) error {
	e, ok := ctx.Get("object").(etudiant.Etudiant)
	if !ok {
		return errors.Wrap(errEtudiantNotFoundInCtx, "retrieving object from context")
	}
	if err := api.svc.Delete(e.ID.Int); err != nil {
		return errors.Wrap(err, "deleting etudiant")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *etudiantApi) destroyMultiple(ctx echo.Context) error {
	var query DestroyMultipleRequest
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to DestroyMultipleRequest")
	}
	if query.IDs == nil {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.svc.Delete(query.IDs...); err != nil {
		return errors.Wrap(err, "deleting etudiants")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func etudiantCtxMiddleware(svc *etudiant.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := paramID(ctx)
			if err != nil {
				return err
			}
			e, err := svc.GetByID(id)
			if err != nil {
				if errors.Cause(err) == etudiant.ErrNotFound {
					return errHttpNotFound
				}
				return errors.Wrap(err, "finding etudiant by ID")
			}
			ctx.Set("object", e)
			return next(ctx)
		}
	}
}
