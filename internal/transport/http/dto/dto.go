package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taskhub/task-service/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields under their json names so validation errors match the
	// wire field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// check runs struct validation and maps the first failure to a domain error.
func check(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var ferrs validator.ValidationErrors
	if errors.As(err, &ferrs) && len(ferrs) > 0 {
		fe := ferrs[0]
		if fe.Tag() == "required" {
			return domain.ErrMissingField(fe.Field())
		}
		return domain.ErrInvalidField(fe.Field(), fe.Tag())
	}
	return domain.ErrInternal(err)
}
