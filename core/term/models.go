package term

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/calendar"
)

type Term struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	StartDate core.Date `json:"start_date" db:"start_date"`
	EndDate   core.Date `json:"end_date" db:"end_date"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // UTC
}

func (t Term) Range() calendar.Range {
	return calendar.Range{Start: t.StartDate, End: t.EndDate}
}

// NewTerm contains information needed to create or replace a Term.
type NewTerm struct {
	Name      string    `json:"name" validate:"notblank,max=100"`
	StartDate core.Date `json:"start_date"`
	EndDate   core.Date `json:"end_date"`
	IsActive  bool      `json:"is_active"`
}

func (nt *NewTerm) Validate(validate *validator.Validate) error {
	nt.Name = core.CleanString(nt.Name)
	if err := validate.Struct(nt); err != nil {
		return err
	}

	var flds []core.FieldError
	if nt.StartDate.IsZero() {
		flds = append(flds, core.FieldError{Field: "start_date", Error: "this field is required"})
	}
	if nt.EndDate.IsZero() {
		flds = append(flds, core.FieldError{Field: "end_date", Error: "this field is required"})
	}
	if flds == nil && nt.EndDate.Before(nt.StartDate) {
		flds = append(flds, core.FieldError{Field: "end_date", Error: "end_date must not be before start_date"})
	}
	if flds != nil {
		return core.NewValidationError(nil, flds...)
	}
	return nil
}
