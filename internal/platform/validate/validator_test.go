package validate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agritalk/cropmd/internal/platform/validate"
)

type testStruct struct {
	Hello string `validate:"required"`
}

type accountStruct struct {
	Email    string `validate:"required,simpleemail"`
	Password string `validate:"required,strongpassword"`
	Phone    string `validate:"omitempty,phone"`
}

func TestStruct(t *testing.T) {
	ctx := context.Background()

	require.Error(t, validate.Struct(ctx, testStruct{}), "expected an error for an empty object")
	require.NoError(t, validate.Struct(ctx, testStruct{"Hello"}), "when the struct is valid don't error")

	t.Run("the project rules are registered", func(t *testing.T) {
		require.NoError(t, validate.Struct(ctx, accountStruct{Email: "juan@farm.ph", Password: "Palay2024"}))
		require.NoError(t, validate.Struct(ctx, accountStruct{Email: "juan@farm.ph", Password: "Palay2024", Phone: "09171234567"}))
		require.Error(t, validate.Struct(ctx, accountStruct{Email: "juan@farm", Password: "Palay2024"}))
		require.Error(t, validate.Struct(ctx, accountStruct{Email: "juan@farm.ph", Password: "palay2024"}))
		require.Error(t, validate.Struct(ctx, accountStruct{Email: "juan@farm.ph", Password: "Palay2024", Phone: "12345"}))
	})
}

func TestEmail(t *testing.T) {
	for _, tc := range []struct {
		in       string
		expected bool
	}{
		{"juan@farm.ph", true},
		{"a@b.c", true},
		{"juan@farm", false},
		{"juan farm@x.ph", false},
		{"@farm.ph", false},
		{"", false},
	} {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.expected, validate.Email(tc.in))
		})
	}
}

func TestStrongPassword(t *testing.T) {
	for _, tc := range []struct {
		name     string
		in       string
		expected bool
	}{
		{"uppercase, digit and long enough", "Kamatis99", true},
		{"too short", "Mais1", false},
		{"no uppercase", "kamatis99", false},
		{"no digit", "Kamatisss", false},
		{"symbols aren't allowed", "Kamatis99!", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, validate.StrongPassword(tc.in))
		})
	}
}

func TestPhone(t *testing.T) {
	require.True(t, validate.Phone("09171234567"))
	require.True(t, validate.Phone("+639171234567"))
	require.False(t, validate.Phone("9171234567"))
	require.False(t, validate.Phone("0917123456"))
}
