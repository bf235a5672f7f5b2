package validator

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

var validate *validator.Validate

var ErrInvalidEmail = errors.New("invalid email")

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("password", passwordRule)
}

// RegisterGin adds the custom rules to gin's binding validator so that
// `binding:"password"` works on request DTOs.
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validator: unexpected gin binding engine")
	}
	return v.RegisterValidation("password", passwordRule)
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	errs := make(map[string]string)
	for _, e := range verrs {
		errs[e.Field()] = e.Tag()
	}
	return errs
}

// StrongPassword reports whether pw is 8..128 characters and mixes upper,
// lower, digit and special characters.
func StrongPassword(pw string) bool {
	n := len([]rune(pw))
	if n < MinPasswordLength || n > MaxPasswordLength {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// NormalizeEmail trims and lowercases an address before checking it, so
// padded input from a form is accepted.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validate.Var(email, "required,email"); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func passwordRule(fl validator.FieldLevel) bool {
	return StrongPassword(fl.Field().String())
}
