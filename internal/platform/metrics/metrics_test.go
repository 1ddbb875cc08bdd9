package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/agritalk/cropmd/internal/platform/metrics"
)

func TestNewStore(t *testing.T) {
	t.Run("registers all collectors on the registry", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		m := metrics.NewStore(reg)

		m.Mutations.WithLabelValues("add", "ok").Inc()
		m.Persists.WithLabelValues("ok").Inc()
		m.Reviews.Set(3)

		count, err := testutil.GatherAndCount(reg)
		require.NoError(t, err)
		require.Equal(t, 5, count, "expected one series per touched vector plus the plain collectors")
		require.Equal(t, float64(3), testutil.ToFloat64(m.Reviews))
	})

	t.Run("a nil registry leaves the collectors unregistered", func(t *testing.T) {
		require.NotPanics(t, func() {
			metrics.NewStore(nil)
			metrics.NewStore(nil)
		})
	})
}
