package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegister_Idempotent(t *testing.T) {
	Register()
	Register()

	ClassificationsTotal.WithLabelValues("Incident").Inc()

	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, mf := range mfs {
		if mf.GetName() == "itsmkb_classifications_total" {
			found = true
		}
	}
	if !found {
		t.Error("itsmkb_classifications_total not registered")
	}
}

func TestSearchRequestsTotal_Labels(t *testing.T) {
	before := testutil.ToFloat64(SearchRequestsTotal.WithLabelValues("search", StatusOK))
	SearchRequestsTotal.WithLabelValues("search", StatusOK).Inc()
	after := testutil.ToFloat64(SearchRequestsTotal.WithLabelValues("search", StatusOK))
	if after-before != 1 {
		t.Errorf("expected increment of 1, got %f", after-before)
	}
}

func TestSearchDuration_Observes(t *testing.T) {
	SearchDuration.WithLabelValues("facets").Observe(0.002)
	if n := testutil.CollectAndCount(SearchDuration); n < 1 {
		t.Errorf("expected at least one series, got %d", n)
	}
}

func TestStatus(t *testing.T) {
	if Status(nil) != StatusOK {
		t.Error("nil error should map to ok")
	}
	if Status(errors.New("boom")) != StatusError {
		t.Error("non-nil error should map to error")
	}
}
