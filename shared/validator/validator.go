package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"pureheart/shared/failure"
	"regexp"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var (
	personNamePattern = regexp.MustCompile(`^[А-Яа-яЁёA-Za-z\s\-]+$`)
	phonePattern      = regexp.MustCompile(`^\+7 \(\d{3}\) \d{3}-\d{2}-\d{2}$`)
)

const rightAngle = 90

// IsPersonName reports whether s is a non-blank name made of Cyrillic or Latin letters, spaces and hyphens.
func IsPersonName(s string) bool {
	return strings.TrimSpace(s) != "" && personNamePattern.MatchString(s)
}

// IsPhone reports whether s matches the display mask +7 (XXX) XXX-XX-XX.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

func registerPersonNameValidation(field val.FieldLevel) bool {
	return IsPersonName(field.Field().String())
}

func registerPhoneValidation(field val.FieldLevel) bool {
	return IsPhone(field.Field().String())
}

func registerRotationValidation(field val.FieldLevel) bool {
	return field.Field().Int()%rightAngle == 0
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("personname", registerPersonNameValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("phone", registerPhoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("rotation", registerRotationValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
