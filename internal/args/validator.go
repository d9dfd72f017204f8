package args

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	positivuserrors "github.com/alexisbeaulieu97/positivus/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

func convertValidationError(field string, err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		rule := ve.Tag()
		if ve.Param() != "" {
			rule = fmt.Sprintf("%s=%s", rule, ve.Param())
		}
		return positivuserrors.NewValidationError(field, fmt.Sprintf("%v failed validation for tag '%s'", ve.Value(), rule), err)
	}
	return positivuserrors.NewValidationError(field, err.Error(), err)
}
