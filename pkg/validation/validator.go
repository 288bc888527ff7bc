package validation

import (
	"github.com/go-playground/validator/v10"
)

// New builds the validator used by the echo adapter: null-type awareness plus
// the custom status rules. A failed rule registration is fatal, the server
// must not start with half a validator.
func New() *validator.Validate {
	v := validator.New()

	registerNullTypes(v)

	if err := registerRules(v); err != nil {
		panic("failed to register validation rules: " + err.Error())
	}

	return v
}
