package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveSearch(t *testing.T) {
	RegisterSearchMetrics()
	RegisterSearchMetrics() // idempotent

	before := testutil.CollectAndCount(SearchDuration)
	ObserveSearch("metrics-test", 20*time.Millisecond, 5)

	if got := testutil.CollectAndCount(SearchDuration); got != before+1 {
		t.Errorf("expected a new search_duration series, got %d (was %d)", got, before)
	}
	if testutil.CollectAndCount(SearchResults) == 0 {
		t.Error("expected search_results observations")
	}
}

func TestRegisterClassifierMetrics_Idempotent(t *testing.T) {
	RegisterClassifierMetrics()
	RegisterClassifierMetrics()

	ClassifierAccuracy.WithLabelValues("test-model").Set(0.75)
	if got := testutil.ToFloat64(ClassifierAccuracy.WithLabelValues("test-model")); got != 0.75 {
		t.Errorf("accuracy gauge = %v", got)
	}
}
