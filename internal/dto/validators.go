package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidations installs the decimal-aware binding validators used by
// the request DTOs. dgte/dlte mirror gte/lte for shopspring decimals, which
// the validator cannot compare natively. Call once at startup.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("dgte", decimalBound(false)); err != nil {
		return err
	}
	return v.RegisterValidation("dlte", decimalBound(true))
}

func decimalBound(upper bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		if upper {
			return d.LessThanOrEqual(bound)
		}
		return d.GreaterThanOrEqual(bound)
	}
}
