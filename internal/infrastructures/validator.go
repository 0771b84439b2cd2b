package infrastructures

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rdityas/weblog-core/internal/app/errors"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()

	// Report fields by their json name so error details match the request body.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate: validate,
	}
}

// Validate checks i against its struct tags. Schema failures are returned as
// validator.ValidationErrors so the response boundary can build the per-field
// detail map; only a nil input is rejected here directly.
func (v *Validator) Validate(i interface{}) error {
	if i == nil {
		return errors.NewBadRequestError(nil)
	}

	return v.validate.Struct(i)
}
