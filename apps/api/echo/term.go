package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/housepoints/core/term"
)

type termApi struct {
	svc      *term.Service
	validate *validator.Validate
}

func registerTermAPI(g *echo.Group, admin echo.MiddlewareFunc, svc *term.Service, validate *validator.Validate) {
	api := termApi{svc: svc, validate: validate}

	tg := g.Group("/terms")
	tg.GET("", api.query)
	tg.POST("", api.create, admin)
	tg.GET("/active", api.active)

	dg := tg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update, admin)
	dg.DELETE("", api.destroy, admin)
	dg.POST("/activate", api.activate, admin)
}

func (api *termApi) create(ctx echo.Context) error {
	var data term.NewTerm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTerm")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	t, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating term")
	}
	return ctx.JSON(http.StatusCreated, t)
}

func (api *termApi) query(ctx echo.Context) error {
	terms, err := api.svc.Query(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying terms")
	}
	return ctx.JSON(http.StatusOK, terms)
}

func (api *termApi) active(ctx echo.Context) error {
	t, err := api.svc.Active(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "getting active term")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *termApi) retrieve(ctx echo.Context) error {
	t, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting term")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *termApi) update(ctx echo.Context) error {
	var data term.NewTerm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTerm")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	t, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating term")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *termApi) activate(ctx echo.Context) error {
	t, err := api.svc.Activate(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "activating term")
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api *termApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting term")
	}
	return ctx.NoContent(http.StatusNoContent)
}
