package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"cashback-backend/utils"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return utils.IsCPF(fl.Field().String())
	})
	_ = v.RegisterValidation("utcdatetime", func(fl validator.FieldLevel) bool {
		return isUTCDateTime(fl.Field().String())
	})

	return v
}

// isUTCDateTime accepts RFC 3339 timestamps written in UTC with the "Z"
// designator. Numeric offsets are refused.
func isUTCDateTime(s string) bool {
	if !strings.HasSuffix(s, "Z") {
		return false
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// validateStruct checks s against its validate tags and collects every
// violation as "path: message".
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return &ValidationError{Message: "invalid data", Issues: []string{err.Error()}}
	}

	issues := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		issues = append(issues, fmt.Sprintf("%s: %s", fieldPath(fe.Namespace()), issueMessage(fe)))
	}
	return &ValidationError{Message: "invalid data", Issues: issues}
}

// fieldPath turns "ImportData.trips[0].totalValue" into "trips.0.totalValue".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	return strings.NewReplacer("[", ".", "]", "").Replace(namespace)
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "cpf":
		return "must contain 11 digits"
	case "email":
		return "invalid email"
	case "gt":
		return "must be positive"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime", "utcdatetime":
		return "invalid datetime"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
