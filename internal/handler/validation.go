package handler

import (
	"errors"

	"planner/internal/schedule"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules used by request structs:
//
//	section  a known section identifier
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return v.RegisterValidation("section", func(fl validator.FieldLevel) bool {
		return schedule.Section(fl.Field().String()).Valid()
	})
}
