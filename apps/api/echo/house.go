package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/housepoints/core/house"
)

type houseApi struct {
	svc      *house.Service
	validate *validator.Validate
}

func registerHouseAPI(g *echo.Group, admin echo.MiddlewareFunc, svc *house.Service, validate *validator.Validate) {
	api := houseApi{svc: svc, validate: validate}

	hg := g.Group("/houses")
	hg.GET("", api.query)
	hg.POST("", api.create, admin)

	dg := hg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update, admin)
	dg.DELETE("", api.destroy, admin)
}

func (api *houseApi) create(ctx echo.Context) error {
	var data house.NewHouse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewHouse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	h, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating house")
	}
	return ctx.JSON(http.StatusCreated, h)
}

func (api *houseApi) query(ctx echo.Context) error {
	houses, err := api.svc.Query(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying houses")
	}
	return ctx.JSON(http.StatusOK, houses)
}

func (api *houseApi) retrieve(ctx echo.Context) error {
	h, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting house")
	}
	return ctx.JSON(http.StatusOK, h)
}

func (api *houseApi) update(ctx echo.Context) error {
	var data house.NewHouse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewHouse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	h, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating house")
	}
	return ctx.JSON(http.StatusOK, h)
}

func (api *houseApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting house")
	}
	return ctx.NoContent(http.StatusNoContent)
}
