package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/calendar"
	"github.com/trezcool/housepoints/core/classroom"
	"github.com/trezcool/housepoints/core/house"
	"github.com/trezcool/housepoints/core/term"
	"github.com/trezcool/housepoints/storage/database"
)

// PrepareDB returns a migrated in-memory sqlite database, closed when t ends.
func PrepareDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = database.Migrate(db); err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	return db
}

func London(t *testing.T) *time.Location {
	t.Helper()
	loc, err := calendar.LoadZone("Europe/London")
	if err != nil {
		t.Fatalf("London() failed: %v", err)
	}
	return loc
}

// Clock is a settable clock for resolvers under test.
type Clock struct {
	now time.Time
}

func NewClock(now time.Time) *Clock { return &Clock{now: now} }

func (c *Clock) Now() time.Time      { return c.now }
func (c *Clock) Set(now time.Time)   { c.now = now }
func (c *Clock) Add(d time.Duration) { c.now = c.now.Add(d) }

// Resolver returns a Europe/London resolver driven by clock.
func Resolver(t *testing.T, clock *Clock) *calendar.Resolver {
	return calendar.NewResolver(London(t), clock.Now)
}

// Logger discards everything and counts warnings.
type Logger struct {
	Warnings []string
	Errors   []string
}

var _ core.Logger = (*Logger)(nil)

func (l *Logger) Debug(string, ...interface{})          {}
func (l *Logger) Info(string, ...interface{})           {}
func (l *Logger) Warn(msg string, _ ...interface{})     { l.Warnings = append(l.Warnings, msg) }
func (l *Logger) Error(msg string, _ ...interface{})    { l.Errors = append(l.Errors, msg) }
func (l *Logger) Fatal(msg string, args ...interface{}) { l.Error(msg, args...) }

func CreateHouse(t *testing.T, repo house.Repository, name, colour string) house.House {
	t.Helper()
	now := time.Now().UTC()
	h, err := repo.CreateHouse(context.Background(), house.House{Name: name, Colour: colour, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		t.Fatalf("CreateHouse() failed: %v", err)
	}
	return h
}

func CreateClass(t *testing.T, repo classroom.Repository, name, teacherEmail string) classroom.Class {
	t.Helper()
	now := time.Now().UTC()
	c, err := repo.CreateClass(context.Background(), classroom.Class{Name: name, TeacherEmail: teacherEmail, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		t.Fatalf("CreateClass() failed: %v", err)
	}
	return c
}

func CreateTerm(t *testing.T, repo term.Repository, name string, start, end core.Date, active bool) term.Term {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	tm, err := repo.CreateTerm(ctx, term.Term{Name: name, StartDate: start, EndDate: end, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		t.Fatalf("CreateTerm() failed: %v", err)
	}
	if active {
		if tm, err = repo.ActivateTerm(ctx, tm.ID, now); err != nil {
			t.Fatalf("CreateTerm() failed: %v", err)
		}
	}
	return tm
}

func Date(year int, month time.Month, day int) core.Date {
	return core.NewDate(year, month, day)
}
