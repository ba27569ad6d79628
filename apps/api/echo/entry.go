package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/calendar"
	"github.com/trezcool/housepoints/core/entry"
)

type entryApi struct {
	svc      *entry.Service
	validate *validator.Validate
}

func registerEntryAPI(g *echo.Group, admin echo.MiddlewareFunc, svc *entry.Service, validate *validator.Validate) {
	api := entryApi{svc: svc, validate: validate}

	eg := g.Group("/entries")
	eg.GET("", api.query)
	eg.POST("", api.submit)
	eg.DELETE("/:id", api.destroy, admin)

	g.GET("/scoreboard", api.scoreboard)
}

func (api *entryApi) submit(ctx echo.Context) error {
	var data entry.NewEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEntry")
	}
	if core.CleanString(data.SubmittedBy) == "" {
		data.SubmittedBy = actorFrom(ctx).Email
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sub, err := api.svc.Submit(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "submitting entry")
	}
	return ctx.JSON(http.StatusCreated, sub)
}

// query lists the entries of ?week=YYYY-MM-DD, the current calendar week by default.
func (api *entryApi) query(ctx echo.Context) error {
	var start core.Date
	if err := parseDateParam("week", ctx.QueryParam("week"), &start); err != nil {
		return err
	}

	entries, err := api.svc.QueryByWeek(ctx.Request().Context(), start)
	if err != nil {
		return errors.Wrap(err, "querying entries")
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *entryApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting entry")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *entryApi) scoreboard(ctx echo.Context) error {
	period, err := calendar.ParsePeriod(ctx.QueryParam("period"))
	if err != nil {
		return err
	}

	board, err := api.svc.Scoreboard(ctx.Request().Context(), period)
	if err != nil {
		return errors.Wrap(err, "computing scoreboard")
	}
	return ctx.JSON(http.StatusOK, board)
}
