package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"webeye/internal/models"
)

// ValidationErrors wraps the validator's ValidationErrors
type ValidationErrors []playgroundvalidator.FieldError

// CustomValidator wraps go-playground/validator
type CustomValidator struct {
	validator *playgroundvalidator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() echo.Validator {
	return &CustomValidator{validator: newPlaygroundValidator()}
}

func newPlaygroundValidator() *playgroundvalidator.Validate {
	v := playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled())

	// Report fields by their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Tags are static; registration only fails on programmer error.
	if err := v.RegisterValidation("status", validateStatus); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("user_role", validateUserRole); err != nil {
		panic(err)
	}

	return v
}

// Custom validation functions
func validateStatus(fl playgroundvalidator.FieldLevel) bool {
	return models.IsValidStatus(models.Status(fl.Field().String()))
}

func validateUserRole(fl playgroundvalidator.FieldLevel) bool {
	return models.IsValidUserRole(models.UserRole(fl.Field().String()))
}

// Validate implements echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		var validationErrors playgroundvalidator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return ValidationErrors(validationErrors)
		}
		return err
	}
	return nil
}

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}
	var fields []string
	for _, err := range ve {
		fields = append(fields, err.Field())
	}
	return fmt.Sprintf("validation failed on fields: %s", strings.Join(fields, ", "))
}

// Format renders validation errors as a field -> message map
func (ve ValidationErrors) Format() map[string]string {
	errMap := make(map[string]string)
	for _, err := range ve {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		switch tag {
		case "required":
			errMap[field] = fmt.Sprintf("%s is required", field)
		case "email":
			errMap[field] = fmt.Sprintf("%s must be a valid email", field)
		case "min":
			errMap[field] = fmt.Sprintf("%s must be at least %s", field, param)
		case "max":
			errMap[field] = fmt.Sprintf("%s must be at most %s", field, param)
		case "url":
			errMap[field] = fmt.Sprintf("%s must be a valid URL", field)
		case "uuid":
			errMap[field] = fmt.Sprintf("%s must be a valid UUID", field)
		case "oneof":
			errMap[field] = fmt.Sprintf("%s must be one of [%s]", field, param)
		case "status":
			errMap[field] = fmt.Sprintf("%s must be one of: active, unstable, down, unknown", field)
		case "user_role":
			errMap[field] = fmt.Sprintf("%s must be one of: MEMBER, ADMIN, SUPER_ADMIN", field)
		default:
			errMap[field] = fmt.Sprintf("%s failed validation: %s", field, tag)
		}
	}
	return errMap
}
