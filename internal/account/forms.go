package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/agritalk/cropmd/internal/platform/validate"
)

// FormError is a form that didn't validate. Key is the translation key of the message to show.
type FormError struct {
	Key string
	Err error
}

func (e *FormError) Error() string {
	return fmt.Sprintf("invalid form (%s): %s", e.Key, e.Err)
}

func (e *FormError) Unwrap() error {
	return e.Err
}

// messages maps a failed validation tag to the translation key shown for it.
// A missing field is always reported first, whichever field it is.
type messages struct {
	required string
	byTag    map[string]string
}

func (m messages) check(ctx context.Context, form any) error {
	err := validate.Struct(ctx, form)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("failed to validate form: %w", err)
	}

	for _, fe := range errs {
		if fe.Tag() == "required" {
			return &FormError{Key: m.required, Err: err}
		}
	}

	for _, fe := range errs {
		if key, ok := m.byTag[fe.Tag()]; ok {
			return &FormError{Key: key, Err: err}
		}
	}

	return &FormError{Key: m.required, Err: err}
}

type LoginForm struct {
	Email    string `form:"email" validate:"required,simpleemail"`
	Password string `form:"password" validate:"required,strongpassword"`
}

func (f LoginForm) Validate(ctx context.Context) error {
	return messages{
		required: "fillAllFields",
		byTag: map[string]string{
			"simpleemail":    "invalidEmail",
			"strongpassword": "invalidPasswordStrong",
		},
	}.check(ctx, f)
}

type RegisterForm struct {
	Fullname        string `form:"fullname"`
	Email           string `form:"email" validate:"required,simpleemail"`
	Phone           string `form:"phone" validate:"omitempty,phone"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

func (f RegisterForm) Validate(ctx context.Context) error {
	return messages{
		required: "allFieldsRequired",
		byTag: map[string]string{
			"simpleemail": "invalidEmail",
			"phone":       "invalidPhone",
			"eqfield":     "passwordsDoNotMatch",
		},
	}.check(ctx, f)
}

type ForgotPasswordForm struct {
	Email string `form:"email" validate:"required,simpleemail"`
}

func (f ForgotPasswordForm) Validate(ctx context.Context) error {
	return messages{
		required: "fillAllFields",
		byTag:    map[string]string{"simpleemail": "invalidEmail"},
	}.check(ctx, f)
}

type VerifyCodeForm struct {
	Email string `form:"email" validate:"required,simpleemail"`
	Code  string `form:"code" validate:"required,len=6,numeric"`
}

func (f VerifyCodeForm) Validate(ctx context.Context) error {
	return messages{
		required: "fillAllFields",
		byTag: map[string]string{
			"simpleemail": "invalidEmail",
			"len":         "invalidCode",
			"numeric":     "invalidCode",
		},
	}.check(ctx, f)
}

// ResetPasswordForm carries the email and code from the verify step along as hidden fields.
type ResetPasswordForm struct {
	Email           string `form:"email" validate:"required,simpleemail"`
	Code            string `form:"code" validate:"required,len=6,numeric"`
	NewPassword     string `form:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

func (f ResetPasswordForm) Validate(ctx context.Context) error {
	return messages{
		required: "allFieldsRequired",
		byTag: map[string]string{
			"min":         "passwordMustBeAtLeast6CharactersLong",
			"eqfield":     "passwordsDoNotMatch",
			"simpleemail": "invalidEmail",
			"len":         "invalidCode",
			"numeric":     "invalidCode",
		},
	}.check(ctx, f)
}
