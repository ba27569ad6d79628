package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/housepoints/apps/api/echo"
	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/classroom"
	"github.com/trezcool/housepoints/core/entry"
	"github.com/trezcool/housepoints/core/house"
	"github.com/trezcool/housepoints/core/term"
	"github.com/trezcool/housepoints/core/week"
	"github.com/trezcool/housepoints/storage/database"
	sqlxrepos "github.com/trezcool/housepoints/storage/database/sqlx"
	testutil "github.com/trezcool/housepoints/tests"
)

const adminEmail = "admin@school.test"

type env struct {
	app       *Server
	db        *sqlx.DB
	clock     *testutil.Clock
	logger    *testutil.Logger
	houseRepo house.Repository
	classRepo classroom.Repository
	termRepo  term.Repository
}

func setup(t *testing.T, now time.Time) *env {
	// set up DB & repos
	db := testutil.PrepareDB(t)
	e := &env{
		db:        db,
		clock:     testutil.NewClock(now),
		logger:    new(testutil.Logger),
		houseRepo: sqlxrepos.NewHouseRepository(db),
		classRepo: sqlxrepos.NewClassRepository(db),
		termRepo:  sqlxrepos.NewTermRepository(db),
	}
	cal := testutil.Resolver(t, e.clock)

	// set up services
	weekSvc := week.NewService(sqlxrepos.NewWeekRepository(db), cal)
	houseSvc := house.NewService(e.houseRepo, e.clock.Now)
	classSvc := classroom.NewService(e.classRepo, e.clock.Now)
	termSvc := term.NewService(database.NewDB(db), e.termRepo, e.clock.Now)
	entrySvc := entry.NewService(sqlxrepos.NewEntryRepository(db), weekSvc, houseSvc, classSvc, cal, termSvc.ActiveRange, e.logger)

	validate, translator := core.NewValidator()

	// set up server
	e.app = NewServer(ServerDeps{
		Conf:       &core.Config{AppName: "House Points", TestMode: true, AdminEmail: adminEmail},
		Logger:     e.logger,
		Calendar:   cal,
		WeekSvc:    weekSvc,
		HouseSvc:   houseSvc,
		ClassSvc:   classSvc,
		TermSvc:    termSvc,
		EntrySvc:   entrySvc,
		Validate:   validate,
		Translator: translator,
	})
	t.Cleanup(func() { _ = e.app.Close() })
	return e
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	email    string
	wantCode int
	wantData []byte
}

func newUserRequest(method, path, email string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		req.Header.Set("X-User-Email", email)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newUserRequest(method, path, "", data...)
}

func (e *env) do(method, path, email string, data ...[]byte) *httptest.ResponseRecorder {
	req, rec := newUserRequest(method, path, email, data...)
	e.app.ServeHTTP(rec, req)
	return rec
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func unmarshal(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("unmarshal(%s) failed: %v", rec.Body.String(), err)
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	if _, ok := j1.([]interface{}); !ok {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
