package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/calendar"
	"github.com/trezcool/housepoints/core/classroom"
	"github.com/trezcool/housepoints/core/entry"
	"github.com/trezcool/housepoints/core/house"
	"github.com/trezcool/housepoints/core/term"
	"github.com/trezcool/housepoints/core/week"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		Calendar   *calendar.Resolver
		WeekSvc    *week.Service
		HouseSvc   *house.Service
		ClassSvc   *classroom.Service
		TermSvc    *term.Service
		EntrySvc   *entry.Service
		Validate   *validator.Validate
		Translator ut.Translator
	}

	Server struct {
		*ServerDeps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		ServerDeps: &deps,
		app:        echo.New(),
		errors:     make(chan error, 1),
		shutdown:   make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.Conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.Conf.Debug || s.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.Logger, s.Translator, s.SignalShutdown)
	s.app.Debug = s.Conf.Debug && !s.Conf.TestMode

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	admin := adminMiddleware(s.Conf.AdminEmail)

	registerCalendarAPI(v1, s.Calendar, s.WeekSvc)
	registerEntryAPI(v1, admin, s.EntrySvc, s.Validate)
	registerHouseAPI(v1, admin, s.HouseSvc, s.Validate)
	registerClassAPI(v1, admin, s.ClassSvc, s.Validate)
	registerTermAPI(v1, admin, s.TermSvc, s.Validate)
}

func (s *Server) Start() {
	if err := s.app.Start(s.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

// Errors receives fatal errors from the listener.
func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// SignalShutdown asks the process to shut down gracefully.
func (s *Server) SignalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already signaled
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	signal.Stop(s.shutdown)
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	signal.Stop(s.shutdown)
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.Conf.AppName+" API!")
}
