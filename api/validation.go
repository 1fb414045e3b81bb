package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/techsync/techsync-backend/errs"
)

const maxRequestBodySize = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	// Report JSON field names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads a size-limited JSON body into dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errs.NewMalformedPayloadError("empty", err)
		}
		return errs.NewInvalidJSONError(err)
	}
	return nil
}

// validateStruct runs the struct tags and reports the first failing field
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.NewBadRequestError(err.Error())
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required", "notblank":
		return errs.NewMissingRequiredFieldError(fe.Field())
	case "oneof":
		return errs.NewInvalidFieldError(fe.Field(), "must be one of: "+strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min", "max":
		return errs.NewInvalidFieldError(fe.Field(), "must satisfy "+fe.Tag()+"="+fe.Param())
	default:
		return errs.NewInvalidFieldError(fe.Field(), "failed "+fe.Tag()+" validation")
	}
}
