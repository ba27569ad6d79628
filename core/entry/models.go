package entry

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/calendar"
)

// Entry is the points a class earned for a house during one week.
// There is at most one Entry per (week, class, house).
type Entry struct {
	ID          string      `json:"id" db:"id"`
	WeekID      string      `json:"week_id" db:"week_id"`
	WeekStart   core.Date   `json:"week_start" db:"week_start"`
	ClassID     string      `json:"class_id" db:"class_id"`
	HouseID     string      `json:"house_id" db:"house_id"`
	Points      int         `json:"points" db:"points"`
	Notes       null.String `json:"notes" db:"notes"`
	Category    null.String `json:"category" db:"category"`
	SubmittedBy string      `json:"submitted_by" db:"submitted_by"`
	SubmittedAt time.Time   `json:"submitted_at" db:"submitted_at"` // UTC
}

type NewEntry struct {
	ClassID     string      `json:"class_id" validate:"notblank"`
	HouseID     string      `json:"house_id" validate:"notblank"`
	Points      int         `json:"points" validate:"gte=0,lte=10000"`
	Notes       null.String `json:"notes"`
	Category    null.String `json:"category"`
	SubmittedBy string      `json:"submitted_by" validate:"required,email"`
}

func (ne *NewEntry) Validate(validate *validator.Validate) error {
	ne.ClassID = core.CleanString(ne.ClassID)
	ne.HouseID = core.CleanString(ne.HouseID)
	ne.SubmittedBy = core.CleanString(ne.SubmittedBy, true /* lower */)
	ne.Notes = cleanNullString(ne.Notes, false)
	ne.Category = cleanNullString(ne.Category, true)
	return validate.Struct(ne)
}

// blank strings are stored as NULL
func cleanNullString(s null.String, lower bool) null.String {
	if !s.Valid {
		return s
	}
	v := core.CleanString(s.String, lower)
	if v == "" {
		return null.String{}
	}
	return null.StringFrom(v)
}

// Submission is the outcome of a submit: the stored entry and its week's deadline.
type Submission struct {
	Entry        Entry     `json:"entry"`
	Deadline     time.Time `json:"deadline"`
	PastDeadline bool      `json:"past_deadline"` // informational only
}

// Filter narrows QueryEntries; zero fields are ignored.
type Filter struct {
	WeekID  string
	ClassID string
	HouseID string
}

type HouseTotal struct {
	HouseID string `json:"house_id" db:"house_id"`
	Name    string `json:"name" db:"name"`
	Colour  string `json:"colour" db:"colour"`
	Points  int    `json:"points" db:"points"`
	Entries int    `json:"entries" db:"entries"`
}

type Scoreboard struct {
	Period calendar.Period `json:"period"`
	Range  calendar.Range  `json:"range"`
	Houses []HouseTotal    `json:"houses"`
}
