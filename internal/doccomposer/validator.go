package doccomposer

import (
	"github.com/go-playground/validator"

	"github.com/aisa-it/doccomposer/internal/doccomposer/export"
)

type RequestValidator struct {
	validator *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	if err := v.RegisterValidation("renderer", rendererValidator); err != nil {
		return nil
	}
	return &RequestValidator{v}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	if err := rv.validator.Struct(i); err != nil {
		if _, ok := err.(validator.ValidationErrors); !ok {
			return nil
		}
		return err
	}
	return nil
}

func rendererValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := export.NewRenderer(value)
	return err == nil
}
