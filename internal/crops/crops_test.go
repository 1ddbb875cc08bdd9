package crops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agritalk/cropmd/internal/crops"
	"github.com/agritalk/cropmd/internal/platform/i18n"
)

func TestAll(t *testing.T) {
	t.Run("lists corn, rice and tomato in dashboard order", func(t *testing.T) {
		var names []string
		for _, c := range crops.All() {
			names = append(names, c.Name)
		}

		require.Equal(t, []string{"Corn", "Rice", "Tomato"}, names)
	})

	t.Run("changing the returned slice doesn't change the catalog", func(t *testing.T) {
		all := crops.All()
		all[0].Name = "Cassava"

		require.Equal(t, "Corn", crops.All()[0].Name)
	})

	t.Run("every crop has a name in both languages", func(t *testing.T) {
		for _, c := range crops.All() {
			require.NotEqual(t, c.Key, i18n.English.T(c.Key), "expected an English string for %s", c.Key)
			require.NotEqual(t, c.Key, i18n.Tagalog.T(c.Key), "expected a Tagalog string for %s", c.Key)
		}
	})
}

func TestBySlug(t *testing.T) {
	t.Run("finds the crop by its slug", func(t *testing.T) {
		actual, err := crops.BySlug("rice")

		require.NoError(t, err)
		require.Equal(t, "Rice", actual.Name)
		require.Equal(t, "rice", actual.Slug())
	})

	t.Run("is forgiving about case and spacing", func(t *testing.T) {
		actual, err := crops.BySlug(" Tomato ")

		require.NoError(t, err)
		require.Equal(t, "Tomato", actual.Name)
	})

	t.Run("an unknown slug is a NotFoundError", func(t *testing.T) {
		_, err := crops.BySlug("cassava")

		var notFound *crops.NotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, "cassava", notFound.Slug)
	})
}
