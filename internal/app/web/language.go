package web

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/donseba/go-htmx"

	"github.com/agritalk/cropmd/internal/platform/i18n"
)

const languageCookie = "lang"

type languageKey struct{}

// Language picks the language for the request from the lang cookie, or def when there's none.
func Language(def i18n.Language) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := def
			if c, err := r.Cookie(languageCookie); err == nil {
				lang = i18n.Parse(c.Value)
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), languageKey{}, lang)))
		})
	}
}

func languageFrom(ctx context.Context) i18n.Language {
	if lang, ok := ctx.Value(languageKey{}).(i18n.Language); ok {
		return lang
	}

	return i18n.English
}

// LanguageHandler switches between English and Tagalog and sends the browser back where it came from.
func LanguageHandler() http.HandlerFunc {
	hx := htmx.New()

	return func(w http.ResponseWriter, r *http.Request) {
		h := hx.NewHandler(w, r)

		http.SetCookie(w, &http.Cookie{
			Name:     languageCookie,
			Value:    string(languageFrom(r.Context()).Toggle()),
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		seeOther(h, back(r))
	}
}

// back returns the path of the referring page on this site, or / when there isn't one.
func back(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}

	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}

	return ref.Path
}
