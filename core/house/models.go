package house

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/housepoints/core"
)

type House struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Colour    string    `json:"colour" db:"colour"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // UTC
}

// NewHouse contains information needed to create or replace a House.
type NewHouse struct {
	Name   string `json:"name" validate:"notblank,max=100"`
	Colour string `json:"colour" validate:"omitempty,max=20"`
}

func (nh *NewHouse) Validate(validate *validator.Validate) error {
	nh.Name = core.CleanString(nh.Name)
	nh.Colour = core.CleanString(nh.Colour, true /* lower */)
	return validate.Struct(nh)
}
