package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Decimals reach the validators as their exact string form; dgte, dlte
	// and dgt compare them without going through float64.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	mustRegister(v, "dgte", decimalCmp(func(c int) bool { return c >= 0 }))
	mustRegister(v, "dlte", decimalCmp(func(c int) bool { return c <= 0 }))
	mustRegister(v, "dgt", decimalCmp(func(c int) bool { return c > 0 }))

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// decimalCmp builds a validation that compares the field with the tag
// parameter and passes ok the result of decimal.Cmp.
func decimalCmp(ok func(int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return ok(d.Cmp(decimal.RequireFromString(fl.Param())))
	}
}

// validateStruct runs the struct tags of s and converts the first failure
// into a *ValidationError.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Reason: reason(fe)}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "dgte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "dlte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "dgt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
