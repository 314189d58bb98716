package words

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	ideaerrors "github.com/alexisbeaulieu97/ideaslot/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// A word is a single printable line with no surrounding blanks.
		_ = v.RegisterValidation("word", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s != "" && strings.TrimSpace(s) == s && !strings.ContainsAny(s, "\r\n\t")
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks that every list is non-empty, free of duplicates and made
// of well-formed words.
func Validate(lists Lists) error {
	if err := validatorInstance().Struct(lists); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		return ideaerrors.NewValidationError(field, describe(ve), err)
	}

	return ideaerrors.NewValidationError("words", err.Error(), err)
}

// fieldName drops the struct name so errors read like the YAML document,
// e.g. "forms[2]".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "must contain at least one entry"
	case "unique":
		return "must not contain duplicates"
	case "word":
		return fmt.Sprintf("%q is not a valid word", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
