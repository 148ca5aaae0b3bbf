package validator

import (
	"sort"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate returns a field -> failed-tag map, or nil when the struct is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		errors[fe.Field()] = fe.Tag()
	}
	return errors
}

// First picks one field/tag pair out of a validation result, for surfaces that
// report only the first error. Fields are ordered by name so the same invalid
// input always surfaces the same error.
func First(errs map[string]string) (field, tag string) {
	if len(errs) == 0 {
		return "", ""
	}

	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields[0], errs[fields[0]]
}
