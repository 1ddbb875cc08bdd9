package reviewing

import (
	"github.com/google/uuid"
)

// Review is one rating and feedback left by the user.
type Review struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Rating   int       `json:"rating" validate:"min=1,max=5"`
	Feedback string    `json:"feedback"`
}

// Update takes the values from the draft that are allowed to change on an existing review.
// The ID and the review's place in the list never change through an edit.
func (r Review) Update(d Draft) Review {
	r.Rating = d.Rating
	r.Feedback = d.Feedback

	return r
}

// Draft is the rating and feedback being written, optionally pointing at the review being edited.
// A zero Rating means no star has been picked yet.
type Draft struct {
	Rating    int    `validate:"min=1,max=5"`
	Feedback  string
	EditingID uuid.UUID
}

// IsEditing reports whether submitting the draft updates an existing review.
func (d Draft) IsEditing() bool {
	return d.EditingID != uuid.Nil
}

// DraftState is where the store's draft is in its lifecycle.
type DraftState int

const (
	DraftEmpty DraftState = iota
	DraftComposing
	DraftEditing
)

func (s DraftState) String() string {
	switch s {
	case DraftEmpty:
		return "empty"
	case DraftComposing:
		return "composing"
	case DraftEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// Outcome tells the caller what a successful submit did, so it can pick the right confirmation.
type Outcome int

const (
	OutcomeAdded Outcome = iota + 1
	OutcomeUpdated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeUpdated:
		return "updated"
	default:
		return "none"
	}
}
