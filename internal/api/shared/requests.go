package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/wtwr-api/internal/apperr"
)

// MaxBodyBytes caps the size of a JSON request body.
const MaxBodyBytes = 1 << 20

// MsgInvalidBody is returned for bodies that are not a single JSON object of
// the expected shape.
const MsgInvalidBody = "Invalid request body"

// Global validator instance for reuse. Field errors are reported with their
// JSON names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
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
	return v
}

// DecodeJSON decodes the request body into v. Unknown fields, trailing data
// and oversized bodies are rejected with a BadRequest error.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return apperr.Wrap(apperr.KindBadRequest, MsgInvalidBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperr.Wrap(apperr.KindBadRequest, MsgInvalidBody, errors.New("trailing data after JSON object"))
	}
	return nil
}

// ValidateRequest validates v with its validate tags. Failures become a
// BadRequest error naming the first offending field.
func ValidateRequest(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return apperr.Wrap(apperr.KindBadRequest, SanitizeValidationError(err), err)
	}
	return nil
}

// Normalizer is implemented by request types that canonicalize their fields
// (e.g. trimming whitespace) before validation.
type Normalizer interface {
	Normalize()
}

// DecodeAndValidate runs DecodeJSON, Normalize when v implements Normalizer,
// then ValidateRequest. Validation therefore sees the values that get stored.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := DecodeJSON(w, r, v); err != nil {
		return err
	}
	if n, ok := v.(Normalizer); ok {
		n.Normalize()
	}
	return ValidateRequest(v)
}

// SanitizeValidationError turns validator output into a short client message
// such as "Invalid email: invalid email format".
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}

	fe := verrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), validationTagMessage(fe))
}

func validationTagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "required field"
	case "email":
		return "invalid email format"
	case "url", "http_url", "uri":
		return "invalid URL"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return "validation failed"
	}
}
