package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/sources/{type}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/sources/domain", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(RequestDuration, "iocscope_http_request_duration_seconds"), 1)
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(Classifications.WithLabelValues("domain"))

	Classifications.WithLabelValues("domain").Inc()

	assert.InDelta(t, before+1, testutil.ToFloat64(Classifications.WithLabelValues("domain")), 0.0001)
}
