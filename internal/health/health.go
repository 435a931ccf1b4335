// Package health serves health check endpoints.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
	"go.uber.org/zap"

	"github.com/MisterMaks/go-url-shortener/internal/logger"
)

// Status is health status.
type Status string

// Statuses.
const (
	Healthy   Status = "Healthy"
	Unhealthy Status = "Unhealthy"
)

// Tags.
const (
	TagSelf  string = "self"
	TagDB    string = "apidb"
	TagCache string = "cache"
)

// DefaultTimeout limits single check duration.
const DefaultTimeout = 5 * time.Second

// EntriesKey is log key for health entries.
const EntriesKey string = "entries"

// Check is single health check.
type Check struct {
	Name        string
	Description string
	Tags        []string
	Run         func(ctx context.Context) error
}

// Self is check which is always healthy.
func Self() Check {
	return Check{
		Name:        TagSelf,
		Description: "This service is healthy",
		Tags:        []string{TagSelf},
		Run:         func(context.Context) error { return nil },
	}
}

// Pinger is something with Ping.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingCheck creates check calling p.Ping.
func PingCheck(name string, p Pinger, tags ...string) Check {
	return Check{Name: name, Tags: tags, Run: p.Ping}
}

// Entry is result of single check.
type Entry struct {
	Status      Status   `json:"status"`
	Description string   `json:"description,omitempty"`
	Duration    string   `json:"duration"`
	Tags        []string `json:"tags"`
	Error       string   `json:"exception,omitempty"`
}

// Report is result of all checks.
type Report struct {
	Status        Status           `json:"status"`
	TotalDuration string           `json:"totalDuration"`
	Entries       map[string]Entry `json:"entries"`
}

// Predicate selects checks to run.
type Predicate func(c Check) bool

// All selects every check.
func All(Check) bool { return true }

// WithTag selects checks with tag.
func WithTag(tag string) Predicate {
	return func(c Check) bool {
		return slices.Contains(c.Tags, tag)
	}
}

// Checker runs checks and renders HealthChecks UI reports.
type Checker struct {
	checks  map[string]Check
	order   []string
	timeout time.Duration

	mu        sync.Mutex
	durations map[string]time.Duration
}

// NewChecker creates *Checker.
func NewChecker(timeout time.Duration, checks ...Check) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Checker{
		checks:    make(map[string]Check, len(checks)),
		timeout:   timeout,
		durations: make(map[string]time.Duration, len(checks)),
	}
	for _, check := range checks {
		c.checks[check.Name] = check
		c.order = append(c.order, check.Name)
	}
	return c
}

// newChecker builds checker of checks selected by predicate. Checks run concurrently on every call.
func (c *Checker) newChecker(predicate Predicate) health.Checker {
	opts := []health.CheckerOption{
		health.WithDisabledCache(),
		health.WithTimeout(c.timeout),
	}
	for _, name := range c.order {
		check := c.checks[name]
		if !predicate(check) {
			continue
		}
		opts = append(opts, health.WithCheck(health.Check{
			Name:    check.Name,
			Timeout: c.timeout,
			Check:   c.timed(check),
		}))
	}
	return health.NewChecker(opts...)
}

func (c *Checker) timed(check Check) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		start := time.Now()
		err := check.Run(ctx)
		c.mu.Lock()
		c.durations[check.Name] = time.Since(start)
		c.mu.Unlock()
		return err
	}
}

// Run runs selected checks.
func (c *Checker) Run(ctx context.Context, predicate Predicate) Report {
	start := time.Now()
	result := c.newChecker(predicate).Check(ctx)
	return c.report(&result, time.Since(start))
}

func (c *Checker) report(result *health.CheckerResult, total time.Duration) Report {
	report := Report{
		Status:        Healthy,
		TotalDuration: formatDuration(total),
		Entries:       make(map[string]Entry, len(result.Details)),
	}
	if result.Status != health.StatusUp {
		report.Status = Unhealthy
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for name, res := range result.Details {
		check := c.checks[name]
		entry := Entry{
			Status:      Healthy,
			Description: check.Description,
			Duration:    formatDuration(c.durations[name]),
			Tags:        check.Tags,
		}
		if entry.Tags == nil {
			entry.Tags = []string{}
		}
		if res.Status != health.StatusUp {
			entry.Status = Unhealthy
		}
		if res.Error != nil {
			entry.Error = res.Error.Error()
			if entry.Description == "" {
				entry.Description = entry.Error
			}
		}
		report.Entries[name] = entry
	}
	return report
}

type startKey struct{}

// reportWriter writes CheckerResult as Report.
type reportWriter struct {
	checker *Checker
}

func (rw reportWriter) Write(result *health.CheckerResult, statusCode int, w http.ResponseWriter, r *http.Request) error {
	start, ok := r.Context().Value(startKey{}).(time.Time)
	if !ok {
		start = time.Now()
	}
	report := rw.checker.report(result, time.Since(start))

	if report.Status != Healthy {
		logger.GetContextLogger(r.Context()).Warn("Health check failed",
			zap.Any(EntriesKey, report.Entries),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(report)
}

// Handler serves report of checks selected by predicate.
func (c *Checker) Handler(predicate Predicate) http.HandlerFunc {
	h := health.NewHandler(c.newChecker(predicate),
		health.WithResultWriter(reportWriter{checker: c}),
		health.WithStatusCodeUp(http.StatusOK),
		health.WithStatusCodeDown(http.StatusServiceUnavailable),
	)
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), startKey{}, time.Now())
		h.ServeHTTP(w, r.WithContext(ctx))
	}
}

// formatDuration formats d as hh:mm:ss.fffffff.
func formatDuration(d time.Duration) string {
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	return fmt.Sprintf("%02d:%02d:%02d.%07d", int64(h), int64(m), int64(s), int64(d/100))
}
