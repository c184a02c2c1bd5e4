// Package metrics keeps labelled counters in memory for /metrics and
// mirrors every increment to an OpenTelemetry counter.
package metrics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "weather-outfit-advisor"

// Counter names shared by the transports and the advisor.
const (
	HTTPRequests      = "http_requests_total"
	HTTPRequestErrors = "http_requests_errors_total"
	QuickActions      = "quick_actions_total"
	WeatherFallbacks  = "weather_fallbacks_total"
	ChatRequests      = "chat_requests_total"
	FeedbackSubmitted = "feedback_total"
)

type Labels map[string]string

type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	meter    metric.Meter
	otel     map[string]metric.Int64Counter
}

func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		meter:    otel.GetMeterProvider().Meter(meterName),
		otel:     make(map[string]metric.Int64Counter),
	}
}

// key renders name{k=v,...} with labels sorted by key.
func key(name string, labels Labels) string {
	if len(labels) == 0 {
		return name
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(labels[k])
	}
	b.WriteByte('}')
	return b.String()
}

func (r *Registry) counter(k string) *atomic.Int64 {
	r.mu.RLock()
	c := r.counters[k]
	r.mu.RUnlock()
	if c != nil {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c = r.counters[k]; c == nil {
		c = new(atomic.Int64)
		r.counters[k] = c
	}
	return c
}

func (r *Registry) instrument(name string) metric.Int64Counter {
	r.mu.RLock()
	inst := r.otel[name]
	r.mu.RUnlock()
	if inst != nil {
		return inst
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if inst = r.otel[name]; inst == nil {
		ctr, err := r.meter.Int64Counter(name)
		if err != nil {
			return nil
		}
		r.otel[name] = ctr
		inst = ctr
	}
	return inst
}

// Inc adds n to the counter. A nil registry is a no-op.
func (r *Registry) Inc(ctx context.Context, name string, labels Labels, n int64) {
	if r == nil {
		return
	}
	r.counter(key(name, labels)).Add(n)

	if inst := r.instrument(name); inst != nil {
		attrs := make([]attribute.KeyValue, 0, len(labels))
		for k, v := range labels {
			attrs = append(attrs, attribute.String(k, v))
		}
		inst.Add(ctx, n, metric.WithAttributes(attrs...))
	}
}

// Value returns the current count for an exact name and label set.
func (r *Registry) Value(name string, labels Labels) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c := r.counters[key(name, labels)]; c != nil {
		return c.Load()
	}
	return 0
}

// SnapshotLines returns "key value" lines sorted by key.
func (r *Registry) SnapshotLines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.counters))
	for k := range r.counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s %d", k, r.counters[k].Load()))
	}
	return lines
}

// EchoHandlerText serves the snapshot as plain text.
func (r *Registry) EchoHandlerText(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
	for _, line := range r.SnapshotLines() {
		if _, err := c.Response().Write([]byte(line + "\n")); err != nil {
			return err
		}
	}
	return nil
}
