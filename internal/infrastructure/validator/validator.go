package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/mikiasgoitom/Piiquante/internal/usecase/contract"
)

// AppValidator implements usecasecontract.IValidator on top of go-playground/validator.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new AppValidator.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidateStruct checks the validate tags of s and reports the first failures in a readable form.
func (av *AppValidator) ValidateStruct(s interface{}) error {
	err := av.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}

// ValidatePasswordStrength checks if the password meets the strength requirements.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !containsUppercase(password) {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !containsLowercase(password) {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !containsNumber(password) {
		return fmt.Errorf("password must contain at least one number")
	}
	if !containsSpecial(password) {
		return fmt.Errorf("password must contain at least one special character")
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("containsuppercase", containsUppercaseFL)
		v.RegisterValidation("containslowercase", containsLowercaseFL)
		v.RegisterValidation("containsdigit", containsNumberFL)
		v.RegisterValidation("containssymbol", containsSpecialFL)
	}
}

// containsUppercase checks if the string contains at least one uppercase letter.
func containsUppercase(s string) bool {
	for _, char := range s {
		if unicode.IsUpper(char) {
			return true
		}
	}
	return false
}
func containsUppercaseFL(fl validator.FieldLevel) bool {
	return containsUppercase(fl.Field().String())
}

// containsLowercase checks if the string contains at least one lowercase letter.
func containsLowercase(s string) bool {
	for _, char := range s {
		if unicode.IsLower(char) {
			return true
		}
	}
	return false
}
func containsLowercaseFL(fl validator.FieldLevel) bool {
	return containsLowercase(fl.Field().String())
}

// containsNumber checks if the string contains at least one number.
func containsNumber(s string) bool {
	for _, char := range s {
		if unicode.IsNumber(char) {
			return true
		}
	}
	return false
}
func containsNumberFL(fl validator.FieldLevel) bool {
	return containsNumber(fl.Field().String())
}

// containsSpecial checks if the string contains at least one special character.
func containsSpecial(s string) bool {
	for _, char := range s {
		if strings.ContainsRune("!@#$%^&*()_+-=[]{};:'\\|,.<>/?", char) {
			return true
		}
	}
	return false
}
func containsSpecialFL(fl validator.FieldLevel) bool {
	return containsSpecial(fl.Field().String())
}
