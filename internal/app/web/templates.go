package web

import (
	"bytes"
	"embed"
	"log/slog"
	"net/http"
	"strings"

	"github.com/donseba/go-htmx"
)

var (
	//go:embed templates/*
	templates embed.FS

	pages = htmx.New()
)

func baseContent(data map[string]any) htmx.RenderableComponent {
	return htmx.NewComponent("templates/base.html").FS(templates).SetData(data)
}

// pageData adds what every page needs to data: the strings for the request's language.
func pageData(r *http.Request, data map[string]any) map[string]any {
	if data == nil {
		data = map[string]any{}
	}

	lang := languageFrom(r.Context())
	data["T"] = lang.Dict()
	data["HTMLLang"] = strings.ToLower(string(lang))

	return data
}

// notice sets the translated message shown at the top of the page.
func notice(r *http.Request, data map[string]any, key string, isError bool) {
	data["Notice"] = languageFrom(r.Context()).T(key)
	data["NoticeError"] = isError
}

// render writes page, which has to already be wrapped in baseContent, with status.
func render(h *htmx.Handler, r *http.Request, status int, name string, page htmx.RenderableComponent) {
	buf := &pageBuffer{header: h.Header()}
	if _, err := pages.NewHandler(buf, r).Render(r.Context(), page); err != nil {
		slog.Error("failed to render page", "page", name, "error", err)
		h.WriteHeader(http.StatusInternalServerError)
		_, _ = h.WriteString("failed to render")
		return
	}

	h.WriteHeader(status)
	_, _ = h.Write(buf.Bytes())
}

// pageBuffer holds a rendered page until it's known the render worked.
type pageBuffer struct {
	bytes.Buffer
	header http.Header
}

func (b *pageBuffer) Header() http.Header { return b.header }

func (b *pageBuffer) WriteHeader(int) {}

// simplePage renders templates/<name>.html in the base layout.
func simplePage(h *htmx.Handler, r *http.Request, status int, name string, data map[string]any) {
	page := htmx.NewComponent("templates/"+name+".html").
		FS(templates).
		SetData(data).
		Wrap(baseContent(data), "Body")

	render(h, r, status, name, page)
}

// seeOther redirects the browser after a successful POST.
func seeOther(h *htmx.Handler, location string) {
	h.Header().Add("Location", location)
	h.WriteHeader(http.StatusSeeOther)
}

// knownNotices are the notices a redirect may ask for through ?notice=.
var knownNotices = map[string]bool{
	"thankYou":             true,
	"updateReview":         true,
	"reviewDeleted":        true,
	"registrationSuccess":  true,
	"passwordResetSuccess": true,
}

func noticeFromQuery(r *http.Request, data map[string]any) {
	if key := r.URL.Query().Get("notice"); knownNotices[key] {
		notice(r, data, key, false)
	}
}
