package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const readyTimeout = 2 * time.Second

// Pinger is any dependency that can report liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingerFunc adapts a plain function to Pinger.
type PingerFunc func(ctx context.Context) error

// PingContext calls f.
func (f PingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

// ReadinessReport lists the state of each dependency.
type ReadinessReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthService serves liveness and readiness. It holds the process-wide
// visit counter, so a single instance must be shared by all requests.
type HealthService struct {
	mu       sync.Mutex
	visits   int
	greeting string

	deps    map[string]Pinger
	order   []string
	metrics *MetricsService
	logger  *zap.Logger
}

// NewHealthService builds the service. greeting is prefixed to the count.
func NewHealthService(greeting string, metrics *MetricsService, logger *zap.Logger) *HealthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthService{greeting: greeting, deps: map[string]Pinger{}, metrics: metrics, logger: logger}
}

// AddDependency registers a dependency checked by Ready. Nil pingers are ignored.
func (s *HealthService) AddDependency(name string, p Pinger) {
	if p == nil {
		return
	}
	if _, ok := s.deps[name]; !ok {
		s.order = append(s.order, name)
	}
	s.deps[name] = p
}

// Check reports the number of earlier checks and then counts this one.
func (s *HealthService) Check() string {
	s.mu.Lock()
	n := s.visits
	s.visits++
	s.mu.Unlock()

	s.metrics.incHealthChecks()
	return fmt.Sprintf("%s%d times", s.greeting, n)
}

// Visits returns the current counter value.
func (s *HealthService) Visits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visits
}

// Ready pings every registered dependency. The report is always returned; the
// error is non-nil when at least one dependency failed.
func (s *HealthService) Ready(ctx context.Context) (ReadinessReport, error) {
	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	report := ReadinessReport{Status: "ok", Checks: make(map[string]string, len(s.order))}
	var failed []string
	for _, name := range s.order {
		if err := s.deps[name].PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", zap.String("dependency", name), zap.Error(err))
			report.Checks[name] = "unavailable"
			failed = append(failed, name)
			continue
		}
		report.Checks[name] = "ok"
	}
	if len(failed) > 0 {
		report.Status = "degraded"
		return report, fmt.Errorf("dependencies unavailable: %v", failed)
	}
	return report, nil
}
