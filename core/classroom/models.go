package classroom

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/housepoints/core"
)

type Class struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	TeacherEmail string    `json:"teacher_email" db:"teacher_email"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // UTC
}

type NewClass struct {
	Name         string `json:"name" validate:"notblank,max=100"`
	TeacherEmail string `json:"teacher_email" validate:"omitempty,email"`
}

func (nc *NewClass) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.TeacherEmail = core.CleanString(nc.TeacherEmail, true /* lower */)
	return validate.Struct(nc)
}
