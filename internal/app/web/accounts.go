package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/donseba/go-htmx"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form/v4"

	"github.com/agritalk/cropmd/internal/account"
)

type accountService interface {
	Register(ctx context.Context, f account.RegisterForm) (account.Account, error)
	Login(ctx context.Context, f account.LoginForm) (account.Account, error)
	RequestReset(ctx context.Context, f account.ForgotPasswordForm) (string, error)
	VerifyCode(ctx context.Context, f account.VerifyCodeForm) error
	ResetPassword(ctx context.Context, f account.ResetPasswordForm) error
}

type accountsHandler struct {
	htmx    *htmx.HTMX
	decoder *form.Decoder
	service accountService
}

func AccountsHandler(service accountService) func(chi.Router) {
	a := accountsHandler{
		htmx:    htmx.New(),
		decoder: form.NewDecoder(),
		service: service,
	}

	return func(r chi.Router) {
		r.Get("/", a.LoginPage)
		r.Post("/", a.Login)
		r.Get("/register", a.RegisterPage)
		r.Post("/register", a.Register)
		r.Get("/forgot-password", a.ForgotPasswordPage)
		r.Post("/forgot-password", a.ForgotPassword)
		r.Post("/forgot-password/verify", a.VerifyCode)
		r.Get("/reset-password", a.ResetPasswordPage)
		r.Post("/reset-password", a.ResetPassword)
	}
}

func (a *accountsHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	data := pageData(r, map[string]any{"Form": account.LoginForm{}})
	noticeFromQuery(r, data)

	simplePage(h, r, http.StatusOK, "login", data)
}

func (a *accountsHandler) Login(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	var f account.LoginForm
	if !a.decode(h, r, &f) {
		return
	}

	if _, err := a.service.Login(r.Context(), f); err != nil {
		a.renderError(h, r, "login", map[string]any{"Form": account.LoginForm{Email: f.Email}}, err)
		return
	}

	seeOther(h, "/dashboard")
}

func (a *accountsHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	simplePage(h, r, http.StatusOK, "register", pageData(r, map[string]any{"Form": account.RegisterForm{}}))
}

func (a *accountsHandler) Register(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	var f account.RegisterForm
	if !a.decode(h, r, &f) {
		return
	}

	if _, err := a.service.Register(r.Context(), f); err != nil {
		f.Password, f.ConfirmPassword = "", ""
		a.renderError(h, r, "register", map[string]any{"Form": f}, err)
		return
	}

	seeOther(h, "/?notice=registrationSuccess")
}

func (a *accountsHandler) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	simplePage(h, r, http.StatusOK, "forgot-password", pageData(r, map[string]any{"Form": account.ForgotPasswordForm{}}))
}

// ForgotPassword sends a verification code. Whether the email has an account
// isn't revealed, the next step looks the same either way.
func (a *accountsHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	var f account.ForgotPasswordForm
	if !a.decode(h, r, &f) {
		return
	}

	_, err := a.service.RequestReset(r.Context(), f)
	if err != nil && !errors.Is(err, account.ErrUnknownAccount) {
		a.renderError(h, r, "forgot-password", map[string]any{"Form": f}, err)
		return
	}
	if err != nil {
		slog.Info("password reset requested for unknown account")
	}

	data := pageData(r, map[string]any{"Form": f, "CodeSent": true})
	notice(r, data, "verificationCodeSent", false)
	simplePage(h, r, http.StatusOK, "forgot-password", data)
}

func (a *accountsHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	var f account.VerifyCodeForm
	if !a.decode(h, r, &f) {
		return
	}

	if err := a.service.VerifyCode(r.Context(), f); err != nil {
		a.renderError(h, r, "forgot-password", map[string]any{"Form": account.ForgotPasswordForm{Email: f.Email}, "CodeSent": true}, err)
		return
	}

	data := pageData(r, map[string]any{"Form": account.ResetPasswordForm{Email: f.Email, Code: f.Code}})
	notice(r, data, "codeVerified", false)
	simplePage(h, r, http.StatusOK, "reset-password", data)
}

func (a *accountsHandler) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	f := account.ResetPasswordForm{
		Email: r.URL.Query().Get("email"),
		Code:  r.URL.Query().Get("code"),
	}

	simplePage(h, r, http.StatusOK, "reset-password", pageData(r, map[string]any{"Form": f}))
}

func (a *accountsHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	var f account.ResetPasswordForm
	if !a.decode(h, r, &f) {
		return
	}

	if err := a.service.ResetPassword(r.Context(), f); err != nil {
		a.renderError(h, r, "reset-password", map[string]any{"Form": account.ResetPasswordForm{Email: f.Email, Code: f.Code}}, err)
		return
	}

	seeOther(h, "/?notice=passwordResetSuccess")
}

// renderError shows the page again with the message for err.
func (a *accountsHandler) renderError(h *htmx.Handler, r *http.Request, name string, data map[string]any, err error) {
	key := account.MessageKey(err)
	if key == "" {
		slog.Error("failed to handle account form", "page", name, "error", err)
		h.WriteHeader(http.StatusInternalServerError)
		h.JustWriteString("something went wrong")
		return
	}

	status := http.StatusBadRequest
	switch {
	case errors.Is(err, account.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, account.ErrAccountExists):
		status = http.StatusConflict
	}

	data = pageData(r, data)
	notice(r, data, key, true)
	simplePage(h, r, status, name, data)
}

func (a *accountsHandler) decode(h *htmx.Handler, r *http.Request, v any) bool {
	if err := r.ParseForm(); err != nil {
		slog.Error("failed to parse form", "error", err)
		h.WriteHeader(http.StatusInternalServerError)
		return false
	}

	if err := a.decoder.Decode(v, r.PostForm); err != nil {
		slog.Error("failed to decode account form", "error", err)
		h.WriteHeader(http.StatusBadRequest)
		h.JustWriteString(err.Error())
		return false
	}

	return true
}
