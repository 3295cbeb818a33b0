package itsmkb

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	healthuc "github.com/kailas-cloud/itsmkb/internal/usecase/health"
)

// healthUseCase is the internal interface for health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// HealthStatus is the outcome of a health check. Checks maps a component
// ("database", "knowledge") to "ok" or "error"; Errors holds the message of
// each failing component.
type HealthStatus struct {
	Status string
	Checks map[string]string
	Errors map[string]string
}

// OK reports whether every component passed.
func (h HealthStatus) OK() bool {
	return h.Status == string(healthuc.Healthy)
}

// Failing lists the failing components in name order.
func (h HealthStatus) Failing() []string {
	var out []string
	for name, res := range h.Checks {
		if res != string(healthuc.CheckOK) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Health pings the store and decodes the stored collection.
func (c *Client) Health(ctx context.Context) HealthStatus {
	start := time.Now()
	report := c.healthSvc.Check(ctx)

	h := HealthStatus{Status: string(report.Status), Checks: make(map[string]string, len(report.Checks))}
	for name, res := range report.Checks {
		h.Checks[name] = string(res)
	}
	if len(report.Errors) > 0 {
		h.Errors = make(map[string]string, len(report.Errors))
		for name, msg := range report.Errors {
			h.Errors[name] = msg
		}
	}

	var err error
	if !h.OK() {
		err = fmt.Errorf("unhealthy: %s", strings.Join(h.Failing(), ", "))
	}
	c.obs.observe("health", start, err)
	return h
}
