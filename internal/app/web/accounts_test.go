package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agritalk/cropmd/internal/platform/i18n"
)

func registerForm(email string) url.Values {
	return url.Values{
		"fullname":        {"Juan dela Cruz"},
		"email":           {email},
		"password":        {"Palay2024"},
		"confirmPassword": {"Palay2024"},
	}
}

func TestAccountsHandler_RegisterAndLogin(t *testing.T) {
	t.Run("shows the login page", func(t *testing.T) {
		h := newHarness(t)

		rec := h.get(t, "/")

		require.Equal(t, http.StatusOK, rec.Code)
		requireText(t, rec, i18n.English.T("forgotPassword"))
	})

	t.Run("a registered account logs in and lands on the dashboard", func(t *testing.T) {
		h := newHarness(t)

		requireRedirect(t, h.post(t, "/register", registerForm("juan@example.ph")), "/?notice=registrationSuccess")
		rec := h.post(t, "/", url.Values{"email": {"juan@example.ph"}, "password": {"Palay2024"}})

		requireRedirect(t, rec, "/dashboard")
	})

	t.Run("the registration notice is shown on the login page", func(t *testing.T) {
		h := newHarness(t)

		rec := h.get(t, "/?notice=registrationSuccess")

		requireText(t, rec, i18n.English.T("registrationSuccess"))
	})

	t.Run("a wrong password is unauthorized and keeps the email filled in", func(t *testing.T) {
		h := newHarness(t)
		h.post(t, "/register", registerForm("juan@example.ph"))

		rec := h.post(t, "/", url.Values{"email": {"juan@example.ph"}, "password": {"Mais20244"}})

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		requireText(t, rec, i18n.English.T("invalidCredentials"))
		require.Contains(t, rec.Body.String(), `value="juan@example.ph"`)
	})

	t.Run("missing fields are a bad request", func(t *testing.T) {
		h := newHarness(t)

		rec := h.post(t, "/", url.Values{"email": {"juan@example.ph"}})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		requireText(t, rec, i18n.English.T("fillAllFields"))
	})

	t.Run("registering an email twice is a conflict", func(t *testing.T) {
		h := newHarness(t)
		h.post(t, "/register", registerForm("juan@example.ph"))

		rec := h.post(t, "/register", registerForm("juan@example.ph"))

		require.Equal(t, http.StatusConflict, rec.Code)
		requireText(t, rec, i18n.English.T("accountExists"))
	})

	t.Run("an invalid phone number is refused in the chosen language", func(t *testing.T) {
		h := newHarness(t)
		form := registerForm("juan@example.ph")
		form.Set("phone", "12345")

		rec := h.post(t, "/register", form, inLanguage(i18n.Tagalog))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		requireText(t, rec, i18n.Tagalog.T("invalidPhone"))
	})
}

func TestAccountsHandler_PasswordReset(t *testing.T) {
	t.Run("send code, verify, reset and log in with the new password", func(t *testing.T) {
		h := newHarness(t)
		h.post(t, "/register", registerForm("juan@example.ph"))

		rec := h.post(t, "/forgot-password", url.Values{"email": {"juan@example.ph"}})
		require.Equal(t, http.StatusOK, rec.Code)
		requireText(t, rec, i18n.English.T("verificationCodeSent"))
		requireText(t, rec, i18n.English.T("enterCode"))

		rec = h.post(t, "/forgot-password/verify", url.Values{"email": {"juan@example.ph"}, "code": {"424242"}})
		require.Equal(t, http.StatusOK, rec.Code)
		requireText(t, rec, i18n.English.T("codeVerified"))
		require.Contains(t, rec.Body.String(), `value="424242"`)

		rec = h.post(t, "/reset-password", url.Values{
			"email":           {"juan@example.ph"},
			"code":            {"424242"},
			"newPassword":     {"Kamatis77"},
			"confirmPassword": {"Kamatis77"},
		})
		requireRedirect(t, rec, "/?notice=passwordResetSuccess")

		requireRedirect(t, h.post(t, "/", url.Values{"email": {"juan@example.ph"}, "password": {"Kamatis77"}}), "/dashboard")
	})

	t.Run("an unknown email looks the same as a known one", func(t *testing.T) {
		h := newHarness(t)

		rec := h.post(t, "/forgot-password", url.Values{"email": {"maria@example.ph"}})

		require.Equal(t, http.StatusOK, rec.Code)
		requireText(t, rec, i18n.English.T("verificationCodeSent"))
	})

	t.Run("a wrong code is refused", func(t *testing.T) {
		h := newHarness(t)
		h.post(t, "/register", registerForm("juan@example.ph"))
		h.post(t, "/forgot-password", url.Values{"email": {"juan@example.ph"}})

		rec := h.post(t, "/forgot-password/verify", url.Values{"email": {"juan@example.ph"}, "code": {"000000"}})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		requireText(t, rec, i18n.English.T("invalidCode"))
	})

	t.Run("passwords that don't match are refused", func(t *testing.T) {
		h := newHarness(t)

		rec := h.post(t, "/reset-password", url.Values{
			"email":           {"juan@example.ph"},
			"code":            {"424242"},
			"newPassword":     {"Kamatis77"},
			"confirmPassword": {"Kamatis78"},
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		requireText(t, rec, i18n.English.T("passwordsDoNotMatch"))
	})
}
