// Package apperror turns binding and validation failures into per-field messages.
package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	errRequired        = errors.New("is required")
	errInvalidTime     = errors.New("must be a time of day in HH:MM format")
	errInvalidDate     = errors.New("must be a date in YYYY-MM-DD format")
	errInvalidNumber   = errors.New("must be a number")
	errWrongType       = errors.New("has the wrong type")
	errMalformedObject = errors.New("request body is not valid")
)

var customErrors = map[string]error{
	"SleepEntryRequest.Bedtime.required":    errRequired,
	"SleepEntryRequest.Bedtime.datetime":    errInvalidTime,
	"SleepEntryRequest.WakeupTime.required": errRequired,
	"SleepEntryRequest.WakeupTime.datetime": errInvalidTime,
	"SleepEntryRequest.Date.datetime":       errInvalidDate,
	"SleepEntryRequest.NapDuration.finite":  errInvalidNumber,
	"MilestoneRequest.Date.datetime":        errInvalidDate,
}

// FieldError is one human-readable problem with a submitted field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldError) String() string {
	return f.Field + " " + f.Message
}

// CustomValidationError converts validator errors and decoding errors into a standardized list.
func CustomValidationError(err error) []FieldError {
	errList := make([]FieldError, 0)

	var (
		validationErr validator.ValidationErrors
		numErr        *strconv.NumError
		typeErr       *json.UnmarshalTypeError
		syntaxErr     *json.SyntaxError
	)

	switch {
	case errors.As(err, &validationErr):
		for _, e := range validationErr {
			key := e.StructNamespace() + "." + e.Tag()

			errMsg := fmt.Sprintf("%s is invalid", e.StructNamespace())
			if v, ok := customErrors[key]; ok {
				errMsg = v.Error()
			}
			errList = append(errList, FieldError{Field: e.Field(), Message: errMsg})
		}
	case errors.As(err, &typeErr):
		msg := errWrongType.Error()
		if k := typeErr.Type.Kind(); k == reflect.Float64 || k == reflect.Float32 {
			msg = errInvalidNumber.Error()
		}
		errList = append(errList, FieldError{Field: typeErr.Field, Message: msg})
	case errors.As(err, &numErr):
		errList = append(errList, FieldError{Field: strconv.Quote(numErr.Num), Message: errInvalidNumber.Error()})
	case errors.As(err, &syntaxErr):
		errList = append(errList, FieldError{Field: "body", Message: errMalformedObject.Error()})
	default:
		errList = append(errList, FieldError{Field: "body", Message: err.Error()})
	}
	return errList
}
