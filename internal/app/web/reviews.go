package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/donseba/go-htmx"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form/v4"
	"github.com/google/uuid"

	"github.com/agritalk/cropmd/internal/platform/i18n"
	"github.com/agritalk/cropmd/internal/reviewing"
)

type reviewStore interface {
	// Reviews returns the list, newest first.
	Reviews() []reviewing.Review
	Draft() reviewing.Draft

	SetRating(rating int) error
	SetFeedback(feedback string)

	// SubmitDraft adds or updates from the draft, see reviewing.Store.Submit.
	SubmitDraft(ctx context.Context) (reviewing.Review, reviewing.Outcome, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BeginEdit(id uuid.UUID) (reviewing.Draft, error)
	CancelEdit()
}

type reviewsHandler struct {
	htmx    *htmx.HTMX
	decoder *form.Decoder
	store   reviewStore
}

func ReviewsHandler(store reviewStore) func(chi.Router) {
	a := reviewsHandler{
		htmx:    htmx.New(),
		decoder: form.NewDecoder(),
		store:   store,
	}

	return func(r chi.Router) {
		r.Get("/", a.Index)
		r.Post("/", a.Submit)
		r.Post("/rating", a.Rating)
		r.Post("/feedback", a.Feedback)
		r.Post("/cancel", a.Cancel)

		r.Route("/{id}", func(r chi.Router) {
			r.Post("/edit", a.Edit)
			r.Post("/delete", a.Delete)
		})
	}
}

type ReviewForm struct {
	Rating   int    `form:"rating"`
	Feedback string `form:"feedback"`
}

// ReviewBasic is a review as the community list shows it.
type ReviewBasic struct {
	ID       uuid.UUID
	Rating   int
	Label    string
	Feedback string
	Stars    []bool
}

type StarBasic struct {
	Value int
	On    bool
}

// DraftBasic is the review form's state.
type DraftBasic struct {
	Rating   int
	Label    string
	Feedback string
	Editing  bool
	Stars    []StarBasic
}

func (a *reviewsHandler) Index(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	data := pageData(r, nil)
	noticeFromQuery(r, data)

	a.renderIndex(h, r, http.StatusOK, data)
}

// Rating is a tap on a star.
func (a *reviewsHandler) Rating(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	f, ok := a.decodeForm(h, r)
	if !ok {
		return
	}

	if r.PostForm.Has("feedback") {
		a.store.SetFeedback(f.Feedback)
	}
	if err := a.store.SetRating(f.Rating); err != nil {
		slog.Info("refused rating", "rating", f.Rating, "error", err)
		data := pageData(r, nil)
		notice(r, data, "invalidRating", true)
		a.renderIndex(h, r, http.StatusBadRequest, data)
		return
	}

	if h.IsHxRequest() {
		a.renderForm(h, r, pageData(r, nil))
		return
	}

	seeOther(h, "/reviews")
}

// Feedback is a change to the text, htmx sends it as the user types.
func (a *reviewsHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	f, ok := a.decodeForm(h, r)
	if !ok {
		return
	}

	a.store.SetFeedback(f.Feedback)

	if h.IsHxRequest() {
		h.WriteHeader(http.StatusNoContent)
		return
	}

	seeOther(h, "/reviews")
}

func (a *reviewsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	f, ok := a.decodeForm(h, r)
	if !ok {
		return
	}

	data := pageData(r, nil)

	// The form carries the whole draft when htmx isn't there to send every change.
	if f.Rating != 0 {
		if err := a.store.SetRating(f.Rating); err != nil {
			notice(r, data, "invalidRating", true)
			a.renderIndex(h, r, http.StatusBadRequest, data)
			return
		}
	}
	if r.PostForm.Has("feedback") {
		a.store.SetFeedback(f.Feedback)
	}

	_, outcome, err := a.store.SubmitDraft(r.Context())
	if err != nil {
		var notFound *reviewing.NotFoundError
		switch {
		case errors.As(err, &notFound):
			slog.Info("review being edited is gone", "id", notFound.ID)
			a.store.CancelEdit()
			notice(r, data, "notFound", true)
			a.renderIndex(h, r, http.StatusNotFound, data)
		case errors.Is(err, reviewing.ErrDraftChanged):
			// Usually a double submit, the first one already took the draft.
			slog.Info("draft changed while submitting", "error", err)
			seeOther(h, "/reviews")
		case errors.Is(err, reviewing.ErrPrecondition):
			notice(r, data, "invalidRating", true)
			a.renderIndex(h, r, http.StatusBadRequest, data)
		default:
			slog.Error("failed to submit review", "error", err)
			h.WriteHeader(http.StatusInternalServerError)
			h.JustWriteString(err.Error())
		}
		return
	}

	if outcome == reviewing.OutcomeUpdated {
		seeOther(h, "/reviews?notice=updateReview")
		return
	}

	seeOther(h, "/reviews?notice=thankYou")
}

// Edit moves the review into the draft, it's a POST since the draft is shared state.
func (a *reviewsHandler) Edit(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	id, ok := a.parseID(h, r)
	if !ok {
		return
	}

	if _, err := a.store.BeginEdit(id); err != nil {
		a.renderFailure(h, r, pageData(r, nil), err)
		return
	}

	seeOther(h, "/reviews")
}

func (a *reviewsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	a.store.CancelEdit()

	seeOther(h, "/reviews")
}

func (a *reviewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h := a.htmx.NewHandler(w, r)

	id, ok := a.parseID(h, r)
	if !ok {
		return
	}

	if err := a.store.Delete(r.Context(), id); err != nil {
		a.renderFailure(h, r, pageData(r, nil), err)
		return
	}

	seeOther(h, "/reviews?notice=reviewDeleted")
}

func (a *reviewsHandler) renderFailure(h *htmx.Handler, r *http.Request, data map[string]any, err error) {
	var notFound *reviewing.NotFoundError
	if errors.As(err, &notFound) {
		slog.Info("review not found", "id", notFound.ID)
		notice(r, data, "notFound", true)
		a.renderIndex(h, r, http.StatusNotFound, data)
		return
	}

	slog.Error("failed to change review", "error", err)
	h.WriteHeader(http.StatusInternalServerError)
	h.JustWriteString(err.Error())
}

func (a *reviewsHandler) renderIndex(h *htmx.Handler, r *http.Request, status int, data map[string]any) {
	lang := languageFrom(r.Context())
	data["Draft"] = convertDraftToHttpObject(lang, a.store.Draft())
	data["Reviews"] = convertToHttpObjects(lang, a.store.Reviews())

	page := htmx.NewComponent("templates/reviews.html").
		FS(templates).
		SetData(data).
		With(
			htmx.NewComponent("templates/review-form.html").
				FS(templates).
				SetData(data),
			"Form",
		).
		Wrap(baseContent(data), "Body")

	render(h, r, status, "reviews", page)
}

// renderForm only renders the form, for htmx to swap in.
func (a *reviewsHandler) renderForm(h *htmx.Handler, r *http.Request, data map[string]any) {
	data["Draft"] = convertDraftToHttpObject(languageFrom(r.Context()), a.store.Draft())

	form := htmx.NewComponent("templates/review-form.html").
		FS(templates).
		SetData(data)

	if _, err := h.Render(r.Context(), form); err != nil {
		slog.Error("failed to render partial", "partial", "review-form", "error", err)
		h.WriteHeader(http.StatusInternalServerError)
		_, _ = h.WriteString("failed to render")
	}
}

func (a *reviewsHandler) decodeForm(h *htmx.Handler, r *http.Request) (ReviewForm, bool) {
	if err := r.ParseForm(); err != nil {
		slog.Error("failed to parse form", "error", err)
		h.WriteHeader(http.StatusInternalServerError)
		return ReviewForm{}, false
	}

	var f ReviewForm
	if err := a.decoder.Decode(&f, r.PostForm); err != nil {
		slog.Error("failed to decode review form", "error", err)
		h.WriteHeader(http.StatusBadRequest)
		h.JustWriteString(err.Error())
		return ReviewForm{}, false
	}

	return f, true
}

func (a *reviewsHandler) parseID(h *htmx.Handler, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		slog.Error("failed to parse review id", "id", r.PathValue("id"), "error", err)
		h.WriteHeader(http.StatusBadRequest)
		h.JustWriteString("invalid id")
		return uuid.Nil, false
	}

	return id, true
}

func stars(rating int) []bool {
	ret := make([]bool, 5)
	for i := range ret {
		ret[i] = i < rating
	}
	return ret
}

func convertToHttpObjects(lang i18n.Language, rs []reviewing.Review) []ReviewBasic {
	ret := make([]ReviewBasic, 0, len(rs))

	for _, r := range rs {
		ret = append(ret, ReviewBasic{
			ID:       r.ID,
			Rating:   r.Rating,
			Label:    lang.RatingLabel(r.Rating),
			Feedback: r.Feedback,
			Stars:    stars(r.Rating),
		})
	}

	return ret
}

func convertDraftToHttpObject(lang i18n.Language, d reviewing.Draft) DraftBasic {
	ret := DraftBasic{
		Rating:   d.Rating,
		Label:    lang.RatingLabel(d.Rating),
		Feedback: d.Feedback,
		Editing:  d.IsEditing(),
	}
	for i, on := range stars(d.Rating) {
		ret.Stars = append(ret.Stars, StarBasic{Value: i + 1, On: on})
	}

	return ret
}
