package metrics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aretw0/minerva/internal/metrics"
	"github.com/aretw0/minerva/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Hooks(t *testing.T) {
	c := metrics.New()
	hooks := c.Hooks()
	ctx := context.Background()

	hooks.OnTransition(ctx, &domain.TransitionEvent{FromNodeID: "inicio", ToNodeID: "general"})
	hooks.OnTransition(ctx, &domain.TransitionEvent{FromNodeID: "inicio", ToNodeID: "general"})
	hooks.OnUnrecognized(ctx, &domain.InputEvent{NodeID: "fin"})

	count, err := testutil.GatherAndCount(c.Registry(), "minerva_transitions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one label pair")

	count, err = testutil.GatherAndCount(c.Registry(), "minerva_unrecognized_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCollector_Handler(t *testing.T) {
	c := metrics.New()
	c.Hooks().OnTransition(context.Background(), &domain.TransitionEvent{FromNodeID: "inicio", ToNodeID: "cajero"})
	c.ObserveRequest("/chatbot", http.StatusOK, 15*time.Millisecond)

	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `minerva_transitions_total{from="inicio",to="cajero"} 1`)
	assert.Contains(t, body, `minerva_http_request_duration_seconds_count{code="200",route="/chatbot"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
