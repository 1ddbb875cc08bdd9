package web_test

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/agritalk/cropmd/internal/account"
	"github.com/agritalk/cropmd/internal/app/web"
	"github.com/agritalk/cropmd/internal/platform/i18n"
	"github.com/agritalk/cropmd/internal/reviewing"
	"github.com/agritalk/cropmd/internal/reviewing/storage"
)

type harness struct {
	router   http.Handler
	store    *reviewing.Store
	accounts *account.Service
}

func newHarness(t *testing.T) harness {
	t.Helper()

	store := reviewing.NewStore(storage.NewMemoryStore(), reviewing.WithRetry(0, time.Millisecond))
	require.NoError(t, store.Load(context.Background()))
	t.Cleanup(func() { _ = store.Close() })

	accounts := account.NewService(
		account.WithBcryptCost(bcrypt.MinCost),
		account.WithCodeGenerator(func() (string, error) { return "424242", nil }),
	)

	r := chi.NewRouter()
	r.Use(web.Language(i18n.English))
	r.Post("/language", web.LanguageHandler())
	r.Group(web.AccountsHandler(accounts))
	r.Group(web.PagesHandler())
	r.Route("/reviews", web.ReviewsHandler(store))

	return harness{router: r, store: store, accounts: accounts}
}

type requestOption func(r *http.Request)

func htmxRequest(r *http.Request) {
	r.Header.Set("HX-Request", "true")
}

func inLanguage(lang i18n.Language) requestOption {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "lang", Value: string(lang)})
	}
}

func (h harness) get(t *testing.T, path string, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	return rec
}

func (h harness) post(t *testing.T, path string, form url.Values, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	return rec
}

// requireText checks the page shows s, as the template would have escaped it.
func requireText(t *testing.T, rec *httptest.ResponseRecorder, s string) {
	t.Helper()

	require.Contains(t, rec.Body.String(), template.HTMLEscapeString(s))
}

func requireRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()

	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	require.Equal(t, location, rec.Header().Get("Location"))
}
