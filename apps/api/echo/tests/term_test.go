package tests

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/housepoints/core/entry"
	"github.com/trezcool/housepoints/core/term"
	testutil "github.com/trezcool/housepoints/tests"
)

func Test_termApi(t *testing.T) {
	e := setup(t, time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC))

	tests := []httpTest{
		{
			name:     "no active term",
			method:   http.MethodGet,
			path:     "/v1/terms/active",
			wantCode: http.StatusNotFound,
			wantData: marshalObj(t, httpErr{Error: term.ErrNoActiveTerm.Error()}),
		},
		{
			name:     "ends before it starts",
			method:   http.MethodPost,
			path:     "/v1/terms",
			body:     []byte(`{"name": "Summer", "start_date": "2024-07-19", "end_date": "2024-04-15"}`),
			email:    adminEmail,
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"end_date": "end_date must not be before start_date"}),
		},
		{
			name:     "missing dates",
			method:   http.MethodPost,
			path:     "/v1/terms",
			body:     []byte(`{"name": "Summer"}`),
			email:    adminEmail,
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"start_date": "this field is required", "end_date": "this field is required"}),
		},
		{
			name:     "not admin",
			method:   http.MethodPost,
			path:     "/v1/terms",
			body:     []byte(`{"name": "Summer", "start_date": "2024-04-15", "end_date": "2024-07-19"}`),
			email:    "teacher@school.test",
			wantCode: http.StatusForbidden,
			wantData: marshalObj(t, httpErr{Error: "permission denied"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, e.do(tt.method, tt.path, tt.email, tt.body))
		})
	}

	var summer, autumn term.Term
	rec := e.do(http.MethodPost, "/v1/terms", adminEmail, []byte(`{"name": "Summer", "start_date": "2024-04-15", "end_date": "2024-07-19", "is_active": true}`))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	unmarshal(t, rec, &summer)
	assert.True(t, summer.IsActive)

	rec = e.do(http.MethodPost, "/v1/terms", adminEmail, []byte(`{"name": "Autumn", "start_date": "2024-09-02", "end_date": "2024-12-20"}`))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	unmarshal(t, rec, &autumn)
	assert.False(t, autumn.IsActive)

	var board entry.Scoreboard
	rec = e.do(http.MethodGet, "/v1/scoreboard?period=term", "")
	require.Equal(t, http.StatusOK, rec.Code)
	unmarshal(t, rec, &board)
	assert.Equal(t, "2024-04-15", board.Range.Start.String())
	assert.Equal(t, "2024-07-19", board.Range.End.String())

	rec = e.do(http.MethodPost, "/v1/terms/"+autumn.ID+"/activate", adminEmail)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var active term.Term
	rec = e.do(http.MethodGet, "/v1/terms/active", "")
	require.Equal(t, http.StatusOK, rec.Code)
	unmarshal(t, rec, &active)
	assert.Equal(t, autumn.ID, active.ID)

	var terms []term.Term
	rec = e.do(http.MethodGet, "/v1/terms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	unmarshal(t, rec, &terms)
	require.Len(t, terms, 2)
	for _, tm := range terms {
		assert.Equal(t, tm.ID == autumn.ID, tm.IsActive, tm.Name)
	}

	rec = e.do(http.MethodDelete, "/v1/terms/"+summer.ID, adminEmail)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = e.do(http.MethodGet, "/v1/terms/"+summer.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// a term that is not active does not drive the term scoreboard
	testutil.CreateTerm(t, e.termRepo, "Spring", testutil.Date(2025, 1, 6), testutil.Date(2025, 4, 4), false)
	rec = e.do(http.MethodGet, "/v1/scoreboard?period=term", "")
	require.Equal(t, http.StatusOK, rec.Code)
	unmarshal(t, rec, &board)
	assert.Equal(t, "2024-09-02", board.Range.Start.String())
}
