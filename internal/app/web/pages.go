package web

import (
	"log/slog"
	"net/http"

	"github.com/donseba/go-htmx"
	"github.com/go-chi/chi/v5"
	"github.com/gosimple/slug"

	"github.com/agritalk/cropmd/internal/crops"
)

// CropBasic is a crop on the dashboard.
type CropBasic struct {
	Name  string
	Label string
}

type pagesHandler struct {
	htmx *htmx.HTMX
}

// PagesHandler serves the screens that only show things: dashboard, camera, history and about.
func PagesHandler() func(chi.Router) {
	a := pagesHandler{htmx: htmx.New()}

	return func(r chi.Router) {
		r.Get("/dashboard", a.Dashboard)
		r.Get("/camera", a.Camera)
		r.Get("/history", a.History)
		r.Get("/about", a.About)
	}
}

func (a *pagesHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	lang := languageFrom(r.Context())
	var cs []CropBasic
	for _, c := range crops.All() {
		cs = append(cs, CropBasic{Name: c.Name, Label: lang.T(c.Key)})
	}
	data := pageData(r, map[string]any{"Crops": cs})

	page := htmx.NewComponent("templates/dashboard.html").
		FS(templates).
		SetData(data).
		AddTemplateFunction("slug", slug.Make).
		Wrap(baseContent(data), "Body")

	render(h, r, http.StatusOK, "dashboard", page)
}

// Camera is where a leaf would be captured for the crop in ?crop=.
func (a *pagesHandler) Camera(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	crop, err := crops.BySlug(r.URL.Query().Get("crop"))
	if err != nil {
		slog.Info("unknown crop", "error", err)
		h.WriteHeader(http.StatusNotFound)
		h.JustWriteString("404: crop not found")
		return
	}

	data := pageData(r, nil)
	data["Crop"] = languageFrom(r.Context()).T(crop.Key)

	simplePage(h, r, http.StatusOK, "camera", data)
}

func (a *pagesHandler) History(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	simplePage(h, r, http.StatusOK, "history", pageData(r, nil))
}

func (a *pagesHandler) About(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	simplePage(h, r, http.StatusOK, "about", pageData(r, nil))
}
