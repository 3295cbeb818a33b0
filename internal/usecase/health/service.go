package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates that some, but not all, checks fail.
	Degraded Status = "degraded"
	// Unhealthy indicates that every check fails.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// DefaultCheckTimeout bounds each component check.
const DefaultCheckTimeout = 2 * time.Second

// Report aggregates health check results. Errors holds the message of each failing check.
type Report struct {
	Status Status                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
	Errors map[string]string      `json:"errors,omitempty"`
}

type check struct {
	name string
	run  func(ctx context.Context) error
}

// Service coordinates health checks.
type Service struct {
	checks  []check
	timeout time.Duration
}

// New creates a Service checking the store connection and, when items is
// non-nil, that the stored collection decodes.
func New(db DBPinger, items ItemLoader) *Service {
	s := &Service{timeout: DefaultCheckTimeout}
	s.checks = append(s.checks, check{name: "database", run: db.Ping})
	if items != nil {
		s.checks = append(s.checks, check{name: "knowledge", run: func(ctx context.Context) error {
			_, err := items.GetAll(ctx)
			return err
		}})
	}
	return s
}

// WithTimeout overrides the per-check timeout.
func (s *Service) WithTimeout(d time.Duration) *Service {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// Check runs every component check in order.
func (s *Service) Check(ctx context.Context) Report {
	r := Report{Checks: make(map[string]CheckResult, len(s.checks))}

	failed := 0
	for _, c := range s.checks {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		err := c.run(cctx)
		cancel()

		if err == nil {
			r.Checks[c.name] = CheckOK
			continue
		}
		failed++
		r.Checks[c.name] = CheckError
		if r.Errors == nil {
			r.Errors = make(map[string]string)
		}
		r.Errors[c.name] = err.Error()
	}

	switch {
	case failed == 0:
		r.Status = Healthy
	case failed == len(s.checks):
		r.Status = Unhealthy
	default:
		r.Status = Degraded
	}
	return r
}
