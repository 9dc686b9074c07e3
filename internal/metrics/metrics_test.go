package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/jask/helpie/internal/provider"
)

func TestActionCounts(t *testing.T) {
	m := New()
	m.Action(ActionDelete, OutcomeRequested)
	m.Action(ActionDelete, OutcomeRequested)
	m.Action(ActionDelete, OutcomeCancelled)

	require.Equal(t, 2.0, testutil.ToFloat64(m.actions.WithLabelValues(ActionDelete, OutcomeRequested)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.actions.WithLabelValues(ActionDelete, OutcomeCancelled)))
}

func TestProvidersGauge(t *testing.T) {
	m := New()
	m.Providers(provider.Summarize(provider.Seed()))

	require.Equal(t, 5.0, testutil.ToFloat64(m.providers.WithLabelValues("total")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.providers.WithLabelValues("suspicious")))
	require.Equal(t, 4.0, testutil.ToFloat64(m.providers.WithLabelValues("active")))
}

func TestHandlerExposesSeries(t *testing.T) {
	m := New()
	m.Action(ActionToggle, OutcomeApplied)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "helpie_admin_actions_total"))
}
