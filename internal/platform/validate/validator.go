package validate

import (
	"context"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	// Loose on purpose, it's the same check the login screen has always done.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Philippine mobile numbers, either local (09…) or international (+639…).
	phonePattern = regexp.MustCompile(`^(\+63|0)9\d{9}$`)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	mustRegister("simpleemail", func(fl validator.FieldLevel) bool {
		return Email(fl.Field().String())
	})
	mustRegister("strongpassword", func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	})
	mustRegister("phone", func(fl validator.FieldLevel) bool {
		return Phone(fl.Field().String())
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic("failed to register validation " + tag + ": " + err.Error())
	}
}

// Struct is a thin wrapper around validator.Validate's StructCtx.
// This exists purely to ensure that we only have one validator cache.
func Struct(ctx context.Context, s any) error {
	return validate.StructCtx(ctx, s)
}

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// StrongPassword reports whether s is at least 8 letters or digits long and
// contains at least one uppercase letter and one digit.
func StrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}

	var upper, digit bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
		default:
			return false
		}
	}

	return upper && digit
}

// Phone reports whether s is a Philippine mobile number.
func Phone(s string) bool {
	return phonePattern.MatchString(s)
}
