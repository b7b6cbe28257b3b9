package app

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// newValidator builds the request validator. decimal.Decimal fields are
// presented to the engine as float64 so numeric tags (gt, gte) apply; the
// conversion is for comparison only, stored values stay exact.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

func (s *appService) validateRequest(procedure string, req any) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%s: %w", procedure, err)
	}
	return nil
}
