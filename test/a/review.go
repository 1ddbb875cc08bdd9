// Package a happily stolen from Working Effectively with Unit Tests.
package a

import (
	"github.com/google/uuid"

	"github.com/agritalk/cropmd/internal/reviewing"
)

type BuilderReview struct {
	r reviewing.Review
}

// Review prepares a reviewing.Review that is valid by default but allows for customization.
func Review() BuilderReview {
	return BuilderReview{}.IsValid()
}

// Build returns the prepared reviewing.Review.
func (b BuilderReview) Build() reviewing.Review {
	return b.r
}

// IsValid prepares a reviewing.Review that will pass validation.
func (b BuilderReview) IsValid() BuilderReview {
	b.r.ID = uuid.MustParse("0193dd86-b07e-7e73-a77e-724bee1fa176") // UUIDv7, just a value, no particular meaning
	b.r.Rating = 5
	b.r.Feedback = "Found the blight on my tomatoes before it spread"

	return b
}

// IsInvalid prepares a reviewing.Review that will fail validation.
func (b BuilderReview) IsInvalid() BuilderReview {
	b.r = reviewing.Review{}

	return b
}

// WithID prepares the reviewing.Review with the passed in id.
func (b BuilderReview) WithID(id uuid.UUID) BuilderReview {
	b.r.ID = id

	return b
}

func (b BuilderReview) WithRating(rating int) BuilderReview {
	b.r.Rating = rating

	return b
}

func (b BuilderReview) WithFeedback(feedback string) BuilderReview {
	b.r.Feedback = feedback

	return b
}

// Modify allows you to specify a custom override while preparing.
// Note: consider naming your pattern and adding it to the builder.
func (b BuilderReview) Modify(mods ...func(r *reviewing.Review)) BuilderReview {
	for _, mod := range mods {
		mod(&b.r)
	}

	return b
}

type BuilderDraft struct {
	d reviewing.Draft
}

// Draft prepares a new, submittable reviewing.Draft.
func Draft() BuilderDraft {
	return BuilderDraft{}.IsValid()
}

func (b BuilderDraft) IsValid() BuilderDraft {
	b.d.Rating = 4
	b.d.Feedback = "The rice categories helped a lot"

	return b
}

// IsUnrated prepares a reviewing.Draft where no star has been picked.
func (b BuilderDraft) IsUnrated() BuilderDraft {
	b.d.Rating = 0

	return b
}

func (b BuilderDraft) WithRating(rating int) BuilderDraft {
	b.d.Rating = rating

	return b
}

func (b BuilderDraft) WithFeedback(feedback string) BuilderDraft {
	b.d.Feedback = feedback

	return b
}

// Editing prepares a reviewing.Draft that updates the review with id.
func (b BuilderDraft) Editing(id uuid.UUID) BuilderDraft {
	b.d.EditingID = id

	return b
}

func (b BuilderDraft) Build() reviewing.Draft {
	return b.d
}
