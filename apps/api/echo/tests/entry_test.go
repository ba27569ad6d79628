package tests

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/housepoints/core/entry"
	testutil "github.com/trezcool/housepoints/tests"
)

func Test_entryApi_submit(t *testing.T) {
	// friday 14:30 BST: past the deadline, before the reopen instant
	e := setup(t, time.Date(2024, 6, 14, 13, 30, 0, 0, time.UTC))
	phoenix := testutil.CreateHouse(t, e.houseRepo, "Phoenix", "red")
	c7b := testutil.CreateClass(t, e.classRepo, "7B", "")

	body := func(points int, by string) []byte {
		return marshalObj(t, map[string]interface{}{
			"class_id":     c7b.ID,
			"house_id":     phoenix.ID,
			"points":       points,
			"submitted_by": by,
		})
	}

	var first entry.Submission
	rec := e.do(http.MethodPost, "/v1/entries", "", body(5, "Teacher@School.test"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	unmarshal(t, rec, &first)
	assert.Equal(t, "2024-06-10", first.Entry.WeekStart.String())
	assert.Equal(t, "teacher@school.test", first.Entry.SubmittedBy)
	assert.True(t, first.PastDeadline)

	t.Run("resubmission replaces", func(t *testing.T) {
		var again entry.Submission
		rec := e.do(http.MethodPost, "/v1/entries", "head@school.test", body(7, ""))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		unmarshal(t, rec, &again)
		assert.Equal(t, first.Entry.ID, again.Entry.ID)
		assert.Equal(t, 7, again.Entry.Points)
		assert.Equal(t, "head@school.test", again.Entry.SubmittedBy) // from the header
	})

	t.Run("after the reopen instant", func(t *testing.T) {
		e.clock.Set(time.Date(2024, 6, 14, 14, 15, 0, 0, time.UTC))
		var next entry.Submission
		rec := e.do(http.MethodPost, "/v1/entries", "", body(1, "teacher@school.test"))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		unmarshal(t, rec, &next)
		assert.Equal(t, "2024-06-17", next.Entry.WeekStart.String())
		assert.False(t, next.PastDeadline)
	})

	tests := []httpTest{
		{
			name:     "negative points",
			body:     body(-1, "teacher@school.test"),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"points": "points must be 0 or greater"}),
		},
		{
			name:     "no submitter",
			body:     body(1, ""),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"submitted_by": "this field is required"}),
		},
		{
			name: "unknown house",
			body: marshalObj(t, map[string]interface{}{
				"class_id": c7b.ID, "house_id": "nope", "points": 1, "submitted_by": "teacher@school.test",
			}),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"house_id": "unknown house"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, e.do(http.MethodPost, "/v1/entries", tt.email, tt.body))
		})
	}
}

func Test_entryApi_queryAndDestroy(t *testing.T) {
	e := setup(t, time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC))
	phoenix := testutil.CreateHouse(t, e.houseRepo, "Phoenix", "red")
	c7b := testutil.CreateClass(t, e.classRepo, "7B", "")

	var sub entry.Submission
	rec := e.do(http.MethodPost, "/v1/entries", "", marshalObj(t, map[string]interface{}{
		"class_id": c7b.ID, "house_id": phoenix.ID, "points": 3, "notes": "tidy room", "submitted_by": "t@school.test",
	}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	unmarshal(t, rec, &sub)

	var entries []entry.Entry
	rec = e.do(http.MethodGet, "/v1/entries", "")
	require.Equal(t, http.StatusOK, rec.Code)
	unmarshal(t, rec, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "tidy room", entries[0].Notes.String)

	rec = e.do(http.MethodGet, "/v1/entries?week=2024-06-03", "")
	require.Equal(t, http.StatusOK, rec.Code)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte("[]")}, rec)

	tests := []httpTest{
		{
			name:     "not admin",
			method:   http.MethodDelete,
			path:     "/v1/entries/" + sub.Entry.ID,
			email:    "t@school.test",
			wantCode: http.StatusForbidden,
			wantData: marshalObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name:     "admin",
			method:   http.MethodDelete,
			path:     "/v1/entries/" + sub.Entry.ID,
			email:    adminEmail,
			wantCode: http.StatusNoContent,
		},
		{
			name:     "already deleted",
			method:   http.MethodDelete,
			path:     "/v1/entries/" + sub.Entry.ID,
			email:    adminEmail,
			wantCode: http.StatusNotFound,
			wantData: marshalObj(t, httpErr{Error: entry.ErrNotFound.Error()}),
		},
		{
			name:     "bad week",
			method:   http.MethodGet,
			path:     "/v1/entries?week=2024-13-01",
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"week": "week must be a date (YYYY-MM-DD)"}),
		},
		{
			name:     "week with trailing junk",
			method:   http.MethodGet,
			path:     "/v1/entries?week=2024-06-10junk",
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"week": "week must be a date (YYYY-MM-DD)"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, e.do(tt.method, tt.path, tt.email))
		})
	}
}

func Test_entryApi_scoreboard(t *testing.T) {
	e := setup(t, time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC))
	phoenix := testutil.CreateHouse(t, e.houseRepo, "Phoenix", "red")
	kraken := testutil.CreateHouse(t, e.houseRepo, "Kraken", "blue")
	c7b := testutil.CreateClass(t, e.classRepo, "7B", "")

	rec := e.do(http.MethodPost, "/v1/entries", "", marshalObj(t, map[string]interface{}{
		"class_id": c7b.ID, "house_id": kraken.ID, "points": 4, "submitted_by": "t@school.test",
	}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	wantWeek := marshalObj(t, map[string]interface{}{
		"period": "week",
		"range":  map[string]string{"start": "2024-06-10", "end": "2024-06-16"},
		"houses": []map[string]interface{}{
			{"house_id": kraken.ID, "name": "Kraken", "colour": "blue", "points": 4, "entries": 1},
			{"house_id": phoenix.ID, "name": "Phoenix", "colour": "red", "points": 0, "entries": 0},
		},
	})

	tests := []httpTest{
		{name: "default period", path: "/v1/scoreboard", wantCode: http.StatusOK, wantData: wantWeek},
		{name: "week", path: "/v1/scoreboard?period=week", wantCode: http.StatusOK, wantData: wantWeek},
		{
			name:     "term without an active term",
			path:     "/v1/scoreboard?period=term",
			wantCode: http.StatusOK,
			wantData: marshalObj(t, map[string]interface{}{
				"period": "term",
				"range":  map[string]string{"start": "2024-06-10", "end": "2024-06-16"},
				"houses": []map[string]interface{}{
					{"house_id": kraken.ID, "name": "Kraken", "colour": "blue", "points": 4, "entries": 1},
					{"house_id": phoenix.ID, "name": "Phoenix", "colour": "red", "points": 0, "entries": 0},
				},
			}),
		},
		{
			name:     "unknown period",
			path:     "/v1/scoreboard?period=month",
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, httpErr{Error: "period must be one of: week, term"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, e.do(http.MethodGet, tt.path, ""))
		})
	}
	assert.Len(t, e.logger.Warnings, 1)
}
