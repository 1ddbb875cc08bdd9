package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agritalk/cropmd/internal/platform/i18n"
)

func TestParse(t *testing.T) {
	require.Equal(t, i18n.Tagalog, i18n.Parse("TL"))
	require.Equal(t, i18n.Tagalog, i18n.Parse(" tl "))
	require.Equal(t, i18n.English, i18n.Parse("EN"))
	require.Equal(t, i18n.English, i18n.Parse("fr"), "expected unknown languages to fall back to English")
	require.Equal(t, i18n.English, i18n.Parse(""))
}

func TestLanguage_Toggle(t *testing.T) {
	require.Equal(t, i18n.Tagalog, i18n.English.Toggle())
	require.Equal(t, i18n.English, i18n.Tagalog.Toggle())
}

func TestLanguage_T(t *testing.T) {
	t.Run("returns the string in the requested language", func(t *testing.T) {
		require.Equal(t, "Palay", i18n.Tagalog.T("rice"))
		require.Equal(t, "Rice", i18n.English.T("rice"))
	})

	t.Run("returns the key itself when nobody knows it", func(t *testing.T) {
		require.Equal(t, "doesNotExist", i18n.Tagalog.T("doesNotExist"))
	})
}

func TestLanguage_RatingLabel(t *testing.T) {
	for rating, expected := range map[int]string{
		0: "Tap a star to rate",
		1: "Poor",
		2: "Fair",
		3: "Good",
		4: "Very Good",
		5: "Excellent",
		6: "Tap a star to rate",
	} {
		require.Equal(t, expected, i18n.English.RatingLabel(rating))
	}

	require.Equal(t, "Napakahusay", i18n.Tagalog.RatingLabel(5))
}
