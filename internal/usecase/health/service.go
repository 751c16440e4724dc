// Package health aggregates component checks into a single status.
package health

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
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

const defaultCheckTimeout = 3 * time.Second

// Report aggregates health check results. Embedding checks are keyed
// "embedding:<model>".
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db      DBPinger
	models  ModelChecker
	timeout time.Duration
	logger  *zap.Logger
}

// New creates a Service. db is nil when persistence is disabled; models can be nil.
func New(db DBPinger, models ModelChecker, logger *zap.Logger) *Service {
	return &Service{db: db, models: models, timeout: defaultCheckTimeout, logger: logger}
}

// Check runs every component check concurrently, each bounded by its own timeout.
func (s *Service) Check(ctx context.Context) Report {
	var (
		mu     sync.Mutex
		checks = make(map[string]CheckResult)
	)
	record := func(name string, err error) {
		res := CheckOK
		if err != nil {
			res = CheckError
			s.logger.Warn("Health check failed", zap.String("component", name), zap.Error(err))
		}
		mu.Lock()
		checks[name] = res
		mu.Unlock()
	}

	var g errgroup.Group
	if s.db != nil {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()
			record("database", s.db.Ping(cctx))
			return nil
		})
	}
	if s.models != nil {
		for _, m := range s.models.Models() {
			g.Go(func() error {
				cctx, cancel := context.WithTimeout(ctx, s.timeout)
				defer cancel()
				record("embedding:"+string(m), s.models.CheckModel(cctx, m))
				return nil
			})
		}
	}
	_ = g.Wait()

	return Report{Status: aggregate(checks), Checks: checks}
}

func aggregate(checks map[string]CheckResult) Status {
	failed := 0
	for _, v := range checks {
		if v == CheckError {
			failed++
		}
	}
	switch {
	case failed == 0:
		return Healthy
	case failed == len(checks):
		return Unhealthy
	default:
		return Degraded
	}
}
