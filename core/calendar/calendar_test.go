package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/housepoints/core"
)

func london(t *testing.T) *time.Location {
	loc, err := LoadZone("Europe/London")
	require.NoError(t, err)
	return loc
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestLoadZone(t *testing.T) {
	tests := []struct {
		name    string
		zone    string
		wantErr bool
	}{
		{name: "blank", zone: "  ", wantErr: true},
		{name: "unknown", zone: "Mars/Olympus_Mons", wantErr: true},
		{name: "named zone", zone: "Europe/London"},
		{name: "padded", zone: " Australia/Sydney "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadZone(tt.zone)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, loc)
		})
	}
}

func TestResolver_Now(t *testing.T) {
	loc := london(t)

	tests := []struct {
		name    string
		instant time.Time
		want    time.Time
	}{
		{
			name:    "winter: GMT",
			instant: time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC),
			want:    time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			name:    "summer: BST",
			instant: time.Date(2024, 6, 14, 14, 15, 0, 0, time.UTC),
			want:    time.Date(2024, 6, 14, 15, 15, 0, 0, time.UTC),
		},
		{
			name:    "host zone is ignored",
			instant: time.Date(2024, 6, 14, 23, 15, 0, 0, time.FixedZone("JST", 9*60*60)),
			want:    time.Date(2024, 6, 14, 15, 15, 0, 0, time.UTC),
		},
		{
			name:    "crosses midnight",
			instant: time.Date(2024, 6, 16, 23, 30, 0, 0, time.UTC),
			want:    time.Date(2024, 6, 17, 0, 30, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(loc, fixedClock(tt.instant))
			got := r.Now()
			assert.True(t, got.Equal(tt.want), "Now() = %v, want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want core.Date
	}{
		{name: "monday midnight", ref: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), want: core.NewDate(2024, 6, 10)},
		{name: "tuesday", ref: time.Date(2024, 6, 11, 8, 0, 0, 0, time.UTC), want: core.NewDate(2024, 6, 10)},
		{name: "friday afternoon", ref: time.Date(2024, 6, 14, 16, 0, 0, 0, time.UTC), want: core.NewDate(2024, 6, 10)},
		{name: "sunday goes back six days", ref: time.Date(2024, 6, 16, 23, 59, 59, 0, time.UTC), want: core.NewDate(2024, 6, 10)},
		{name: "across a month", ref: time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC), want: core.NewDate(2024, 2, 26)},
		{name: "across a year", ref: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), want: core.NewDate(2024, 12, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.ref)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestEntryWeekStart(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want core.Date
	}{
		{name: "monday", ref: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), want: core.NewDate(2024, 6, 10)},
		{name: "friday at the deadline", ref: time.Date(2024, 6, 14, 14, 25, 0, 0, time.UTC), want: core.NewDate(2024, 6, 10)},
		{name: "friday 15:14:59", ref: time.Date(2024, 6, 14, 15, 14, 59, 0, time.UTC), want: core.NewDate(2024, 6, 10)},
		{name: "friday 15:15:00", ref: time.Date(2024, 6, 14, 15, 15, 0, 0, time.UTC), want: core.NewDate(2024, 6, 17)},
		{name: "saturday", ref: time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC), want: core.NewDate(2024, 6, 17)},
		{name: "sunday night", ref: time.Date(2024, 6, 16, 23, 59, 59, 0, time.UTC), want: core.NewDate(2024, 6, 17)},
		{name: "next monday", ref: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC), want: core.NewDate(2024, 6, 17)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EntryWeekStart(tt.ref)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestResolver_CurrentEntryWeek(t *testing.T) {
	loc := london(t)

	// 15:15 BST is 14:15 UTC
	before := NewResolver(loc, fixedClock(time.Date(2024, 6, 14, 14, 14, 59, 0, time.UTC)))
	at := NewResolver(loc, fixedClock(time.Date(2024, 6, 14, 14, 15, 0, 0, time.UTC)))

	assert.Equal(t, "2024-06-10", before.CurrentEntryWeek().String())
	assert.Equal(t, "2024-06-17", at.CurrentEntryWeek().String())

	// the calendar week does not move with the reopen rule
	assert.Equal(t, "2024-06-10", before.CurrentWeek().String())
	assert.Equal(t, "2024-06-10", at.CurrentWeek().String())
}

// every 7 minutes across weeks that contain both UK DST transitions
func TestWeekProperties(t *testing.T) {
	loc := london(t)
	r := NewResolver(loc, nil)

	windows := []struct{ from, to time.Time }{
		{time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 10, 21, 0, 0, 0, 0, time.UTC), time.Date(2024, 11, 4, 0, 0, 0, 0, time.UTC)},
	}
	for _, w := range windows {
		for instant := w.from; instant.Before(w.to); instant = instant.Add(7 * time.Minute) {
			ref := r.WallClock(instant)
			week := WeekStart(ref)

			require.Equal(t, time.Monday, week.Weekday(), "ref %v", ref)
			require.True(t, IsWeekStart(week))
			require.Zero(t, week.Hour()+week.Minute()+week.Second())
			require.False(t, ref.Before(week.Time), "ref %v before week %v", ref, week)
			require.True(t, ref.Before(week.AddDays(7).Time), "ref %v after week %v", ref, week)

			entry := EntryWeekStart(ref)
			if ref.Before(ReopenAt(week)) {
				require.Equal(t, week.String(), entry.String(), "ref %v", ref)
			} else {
				require.Equal(t, week.AddDays(7).String(), entry.String(), "ref %v", ref)
			}

			require.Equal(t, week.String(), r.WeekOf(instant).String())
			require.Equal(t, entry.String(), r.EntryWeekOf(instant).String())
		}
	}
}

func TestResolver_DeadlineFor(t *testing.T) {
	loc := london(t)
	r := NewResolver(loc, nil)

	tests := []struct {
		name string
		week core.Date
		want time.Time
	}{
		{name: "GMT", week: core.NewDate(2024, 1, 8), want: time.Date(2024, 1, 12, 14, 25, 0, 0, time.UTC)},
		{name: "BST", week: core.NewDate(2024, 6, 10), want: time.Date(2024, 6, 14, 13, 25, 0, 0, time.UTC)},
		{name: "week of the spring change", week: core.NewDate(2024, 3, 25), want: time.Date(2024, 3, 29, 14, 25, 0, 0, time.UTC)},
		{name: "week after the spring change", week: core.NewDate(2024, 4, 1), want: time.Date(2024, 4, 5, 13, 25, 0, 0, time.UTC)},
		{name: "week after the autumn change", week: core.NewDate(2024, 10, 28), want: time.Date(2024, 11, 1, 14, 25, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.DeadlineFor(tt.week)
			assert.True(t, got.Equal(tt.want), "DeadlineFor() = %v, want %v", got.UTC(), tt.want)

			local := got.In(loc)
			assert.Equal(t, time.Friday, local.Weekday())
			assert.Equal(t, 14, local.Hour())
			assert.Equal(t, 25, local.Minute())
			assert.Equal(t, tt.week.AddDays(4).String(), core.DateOf(local).String())
		})
	}
}

func TestResolver_DeadlineBeforeReopen(t *testing.T) {
	r := NewResolver(london(t), nil)
	week := core.NewDate(2024, 6, 10)

	assert.True(t, r.DeadlineFor(week).Before(r.ReopenInstant(week)))
	assert.Equal(t, 50*time.Minute, r.ReopenInstant(week).Sub(r.DeadlineFor(week)))
}
