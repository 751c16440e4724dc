package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func instrumentedRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(Middleware())
	return r
}

func TestMiddleware_InFlightGauge(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	r := instrumentedRouter()
	r.Post("/classification/predict", func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		<-release
		w.WriteHeader(http.StatusOK)
	})

	base := testutil.ToFloat64(httpRequestsInFlight)

	done := make(chan struct{})
	go func() {
		defer close(done)
		req := httptest.NewRequest(http.MethodPost, "/classification/predict", strings.NewReader(`{"text":"x"}`))
		r.ServeHTTP(httptest.NewRecorder(), req)
	}()

	<-entered
	if got := testutil.ToFloat64(httpRequestsInFlight); got != base+1 {
		t.Errorf("in flight while handler blocked = %v, want %v", got, base+1)
	}

	close(release)
	<-done
	if got := testutil.ToFloat64(httpRequestsInFlight); got != base {
		t.Errorf("in flight after completion = %v, want %v", got, base)
	}
}

func TestMiddleware_InFlightReleasedOnPanic(t *testing.T) {
	r := instrumentedRouter()
	r.Get("/legal-search/benchmark", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	base := testutil.ToFloat64(httpRequestsInFlight)
	func() {
		defer func() { _ = recover() }()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/legal-search/benchmark", http.NoBody))
	}()

	if got := testutil.ToFloat64(httpRequestsInFlight); got != base {
		t.Errorf("in flight after panic = %v, want %v", got, base)
	}
}

func TestMiddleware_LabelsByRoutePatternAndStatus(t *testing.T) {
	r := instrumentedRouter()
	r.Post("/legal-search", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results":{}}`))
	})
	r.Post("/classification/train", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	r.Get("/documents/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	tests := []struct {
		method  string
		target  string
		pattern string
		status  string
	}{
		{http.MethodPost, "/legal-search", "/legal-search", "200"},
		{http.MethodPost, "/classification/train", "/classification/train", "400"},
		{http.MethodGet, "/documents/0b7c", "/documents/{id}", "404"},
		{http.MethodGet, "/documents/9f21", "/documents/{id}", "404"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			counter := httpRequestsTotal.WithLabelValues(tt.method, tt.pattern, tt.status)
			before := testutil.ToFloat64(counter)

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, http.NoBody))

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("requests_total{%s %s %s} = %v, want %v", tt.method, tt.pattern, tt.status, got, before+1)
			}
		})
	}

	if testutil.CollectAndCount(httpRequestDuration) == 0 {
		t.Error("expected http_request_duration_seconds observations")
	}
}

func TestMiddleware_UnmatchedRouteLabelledUnknown(t *testing.T) {
	r := instrumentedRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {})

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "unknown", "404")
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/no-such-route", http.NoBody))

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("unknown route counter = %v, want %v", got, before+1)
	}
}

func TestStatusWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec, status: http.StatusOK}

	sw.WriteHeader(http.StatusBadGateway)
	sw.WriteHeader(http.StatusOK)

	if sw.status != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", sw.status, http.StatusBadGateway)
	}
}

func TestStatusWriter_ImplicitOK(t *testing.T) {
	sw := &statusWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	if _, err := sw.Write([]byte("{}")); err != nil {
		t.Fatalf("write: %v", err)
	}
	sw.WriteHeader(http.StatusInternalServerError)
	if sw.status != http.StatusOK {
		t.Errorf("status after body write = %d, want 200", sw.status)
	}
}

func TestMetricsEndpoint_ExposesHTTPSeries(t *testing.T) {
	r := instrumentedRouter()
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, namespace+"_http_requests_in_flight") {
		t.Error("expected in-flight gauge in exposition")
	}
}
