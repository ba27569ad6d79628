package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/calendar"
	"github.com/trezcool/housepoints/core/week"
)

const wallClockLayout = "2006-01-02T15:04:05"

type (
	calendarApi struct {
		cal     *calendar.Resolver
		weekSvc *week.Service
	}

	CalendarResponse struct {
		Timezone    string         `json:"timezone"`
		Now         string         `json:"now"` // wall clock, no offset
		CurrentWeek calendar.Range `json:"current_week"`
		EntryWeek   core.Date      `json:"entry_week"`
		Deadline    time.Time      `json:"deadline"`  // of the entry week
		ReopenAt    time.Time      `json:"reopen_at"` // of the entry week
	}
)

func registerCalendarAPI(g *echo.Group, cal *calendar.Resolver, weekSvc *week.Service) {
	api := calendarApi{cal: cal, weekSvc: weekSvc}

	g.GET("/calendar", api.calendar)
	g.GET("/weeks", api.weeks)
}

func (api *calendarApi) calendar(ctx echo.Context) error {
	now := api.cal.Instant()
	wall := api.cal.WallClock(now)
	entryWeek := calendar.EntryWeekStart(wall)

	return ctx.JSON(http.StatusOK, CalendarResponse{
		Timezone:    api.cal.Location().String(),
		Now:         wall.Format(wallClockLayout),
		CurrentWeek: calendar.WeekRange(wall),
		EntryWeek:   entryWeek,
		Deadline:    api.cal.DeadlineFor(entryWeek),
		ReopenAt:    api.cal.ReopenInstant(entryWeek),
	})
}

// weeks lists persisted weeks, optionally those starting within [from, to].
func (api *calendarApi) weeks(ctx echo.Context) error {
	var (
		filter week.Filter
		err    error
	)
	if filter.From, err = parseOptionalDate("from", ctx.QueryParam("from")); err != nil {
		return err
	}
	if filter.To, err = parseOptionalDate("to", ctx.QueryParam("to")); err != nil {
		return err
	}

	weeks, err := api.weekSvc.Query(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying weeks")
	}
	return ctx.JSON(http.StatusOK, weeks)
}

// parseDateParam leaves dst untouched when value is blank.
func parseDateParam(name, value string, dst *core.Date) error {
	if value == "" {
		return nil
	}
	d, err := core.ParseDate(value)
	if err != nil {
		return core.NewValidationError(err, core.FieldError{Field: name, Error: name + " must be a date (YYYY-MM-DD)"})
	}
	*dst = d
	return nil
}

// parseOptionalDate returns nil when value is blank.
func parseOptionalDate(name, value string) (*core.Date, error) {
	if value == "" {
		return nil, nil
	}
	var d core.Date
	if err := parseDateParam(name, value, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
