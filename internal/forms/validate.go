package forms

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tropicacao/leads-api/internal/models"
	apperrors "github.com/tropicacao/leads-api/pkg/errors"
)

// Loose international phone shape: digits, spaces, parens, hyphens and an
// optional leading +, 7-20 characters total.
var phonePattern = regexp.MustCompile(`^\+?[0-9()\s-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under json field names so the error map matches the
	// payload the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Must not fail: the tag name is a literal
	if err := v.RegisterValidation("phone", validPhone); err != nil {
		panic(err)
	}

	return v
}

func validPhone(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 7 || len(s) > 20 {
		return false
	}
	return phonePattern.MatchString(s)
}

// Validate checks the open field mapping against the typed contract for the
// given form type. It returns the normalized (stringified) fields on success,
// or a FieldErrors carrying one human-readable message per invalid field.
func Validate(ft models.FormType, fields map[string]any) (map[string]string, error) {
	form := newForm(ft)
	if form == nil {
		return nil, apperrors.UnknownFormTypeError(string(ft))
	}

	norm, fieldErrs := normalize(fields)
	if len(fieldErrs) > 0 {
		return nil, &apperrors.FieldErrors{Fields: fieldErrs}
	}

	// Round-trip through json to populate the typed struct; unknown fields
	// are dropped on the floor
	encoded, err := json.Marshal(norm)
	if err != nil {
		return nil, apperrors.InternalError("failed to encode submission fields")
	}
	if err := json.Unmarshal(encoded, form); err != nil {
		return nil, apperrors.InternalError("failed to decode submission fields")
	}

	if err := validate.Struct(form); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, apperrors.InternalError("validator returned unexpected error")
		}

		out := make(map[string]string, len(validationErrors))
		for _, fieldError := range validationErrors {
			// First violated rule wins
			if _, seen := out[fieldError.Field()]; !seen {
				out[fieldError.Field()] = errorMessage(fieldError)
			}
		}
		return nil, &apperrors.FieldErrors{Fields: out}
	}

	return norm, nil
}

// normalize coerces the open field mapping to strings. Scalars (string,
// number, boolean) are accepted; anything structured is a field error.
func normalize(fields map[string]any) (map[string]string, map[string]string) {
	norm := make(map[string]string, len(fields))
	errs := map[string]string{}

	for key, value := range fields {
		switch v := value.(type) {
		case nil:
			// Treated as absent
		case string:
			norm[key] = strings.TrimSpace(v)
		case float64:
			norm[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			norm[key] = strconv.FormatBool(v)
		default:
			errs[key] = key + " must be a text, number or boolean value"
		}
	}

	return norm, errs
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "phone":
		return "Invalid phone number format"
	default:
		return fe.Field() + " is invalid"
	}
}
