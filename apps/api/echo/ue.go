package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/scolarite/core/ue"
)

type ueApi struct {
	svc      *ue.Service
	validate *validator.Validate
}

func registerUEAPI(g *echo.Group, svc *ue.Service, validate *validator.Validate) {
	api := ueApi{
		svc:      svc,
		validate: validate,
	}

	ug := g.Group("/ue")
	ug.GET("", api.query)
	ug.POST("", api.create)
	ug.GET("/:id", api.retrieve)
	ug.DELETE("/:id", api.destroy)
}

// Handlers

func (api *ueApi) create(ctx echo.Context) error {
	var data ue.NewUE
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUE")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	u, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating ue")
	}
	return ctx.JSON(http.StatusCreated, u)
}

func (api *ueApi) query(ctx echo.Context) error {
	filter := new(ue.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()

	list, err := api.svc.Query(filter)
	if err != nil {
		return errors.Wrap(err, "querying ue")
	}
	return ctx.JSON(http.StatusOK, list)
}

func (api *ueApi) retrieve(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}
	u, err := api.svc.GetByID(id)
	if err != nil {
		if errors.Cause(err) == ue.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding ue by ID")
	}
	return ctx.JSON(http.StatusOK, u)
}

func (api *ueApi) destroy(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}
	if _, err = api.svc.GetByID(id); err != nil {
		if errors.Cause(err) == ue.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding ue by ID")
	}
	if err = api.svc.Delete(id); err != nil {
		return errors.Wrap(err, "deleting ue")
	}
	return ctx.NoContent(http.StatusNoContent)
}
