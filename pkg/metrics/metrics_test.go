package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_RecordRequest(t *testing.T) {
	c := New("proteinmeals")

	c.RecordRequest(http.MethodGet, "/meals", "200", 25*time.Millisecond)
	c.RecordRequest(http.MethodGet, "/meals", "200", 30*time.Millisecond)
	c.RecordRequest(http.MethodPost, "/seed", "500", 5*time.Millisecond)

	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues(http.MethodGet, "/meals", "200")); got != 2 {
		t.Errorf("requests_total for GET /meals 200 = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues(http.MethodPost, "/seed", "500")); got != 1 {
		t.Errorf("requests_total for POST /seed 500 = %v, want 1", got)
	}
}

func TestCollector_InFlight(t *testing.T) {
	c := New("proteinmeals")

	c.IncInFlight()
	c.IncInFlight()
	if got := testutil.ToFloat64(c.requestsInFlight); got != 2 {
		t.Errorf("requests_in_flight = %v, want 2", got)
	}

	c.DecInFlight()
	if got := testutil.ToFloat64(c.requestsInFlight); got != 1 {
		t.Errorf("requests_in_flight = %v, want 1", got)
	}
}

func TestCollector_Handler(t *testing.T) {
	c := New("proteinmeals")
	c.RecordRequest(http.MethodGet, "/meals", "200", 10*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	c.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "proteinmeals_http_requests_total") {
		t.Error("expected exposition to contain proteinmeals_http_requests_total")
	}
	if !strings.Contains(body, "proteinmeals_http_request_duration_seconds") {
		t.Error("expected exposition to contain proteinmeals_http_request_duration_seconds")
	}
	if !strings.Contains(body, "proteinmeals_http_requests_in_flight") {
		t.Error("expected exposition to contain proteinmeals_http_requests_in_flight")
	}
}
