package reviewing_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/agritalk/cropmd/internal/reviewing"
	"github.com/agritalk/cropmd/test/a"
)

func TestReview_Update(t *testing.T) {
	t.Run("an update with the review's own values doesn't modify the object", func(t *testing.T) {
		review := a.Review().Build()

		actual := review.Update(reviewing.Draft{Rating: review.Rating, Feedback: review.Feedback})

		require.Equal(t, review, actual)
	})

	t.Run("takes the rating and feedback but never the id", func(t *testing.T) {
		review := a.Review().Build()
		draft := a.Draft().WithRating(2).WithFeedback("Slow on my phone").Editing(a.UUID()).Build()

		actual := review.Update(draft)

		require.Equal(
			t,
			reviewing.Review{ID: review.ID, Rating: 2, Feedback: "Slow on my phone"},
			actual,
			"expected only rating and feedback to have changed",
		)
	})
}

func TestDraft_IsEditing(t *testing.T) {
	require.False(t, a.Draft().Build().IsEditing())
	require.False(t, a.Draft().Editing(uuid.Nil).Build().IsEditing())
	require.True(t, a.Draft().Editing(a.UUID()).Build().IsEditing())
}

func TestDraftState_String(t *testing.T) {
	require.Equal(t, "empty", reviewing.DraftEmpty.String())
	require.Equal(t, "composing", reviewing.DraftComposing.String())
	require.Equal(t, "editing", reviewing.DraftEditing.String())
}

func TestOutcome_String(t *testing.T) {
	require.Equal(t, "added", reviewing.OutcomeAdded.String())
	require.Equal(t, "updated", reviewing.OutcomeUpdated.String())
	require.Equal(t, "none", reviewing.Outcome(0).String())
}
