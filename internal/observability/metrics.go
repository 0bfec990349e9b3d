package observability

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"

	durationMetric = "observation_duration_seconds"
	maxMetric      = "observation_duration_max_seconds"
)

// Recorder receives the result of a timed observation.
type Recorder interface {
	Record(name string, d time.Duration, err error)
}

// Observe runs fn and reports its duration and outcome to rec under name.
// The value and error of fn are returned unchanged. A nil rec only runs fn.
func Observe[T any](ctx context.Context, rec Recorder, name string, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()
	v, err := fn(ctx)
	if rec != nil {
		rec.Record(name, time.Since(start), err)
	}
	return v, err
}

// Measurement is one statistic of a metric snapshot.
type Measurement struct {
	Statistic string  `json:"statistic"`
	Value     float64 `json:"value"`
}

// AvailableTag lists the values seen for a tag.
type AvailableTag struct {
	Tag    string   `json:"tag"`
	Values []string `json:"values"`
}

// MetricSnapshot is the actuator-style view of a single observation.
type MetricSnapshot struct {
	Name          string         `json:"name"`
	BaseUnit      string         `json:"baseUnit"`
	Measurements  []Measurement  `json:"measurements"`
	AvailableTags []AvailableTag `json:"availableTags"`
}

// Registry records observations into a private Prometheus registry.
type Registry struct {
	reg       *prometheus.Registry
	durations *prometheus.HistogramVec
	peak      *prometheus.GaugeVec

	mu       sync.Mutex
	outcomes map[string]map[string]struct{}
	maxSeen  map[string]float64
}

var _ Recorder = (*Registry)(nil)

// NewRegistry creates a Registry. When withRuntime is set the Go runtime and
// process collectors are registered alongside the observation metrics.
func NewRegistry(withRuntime bool) *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    durationMetric,
			Help:    "Duration of observed operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"name", "outcome"}),
		peak: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: maxMetric,
			Help: "Longest observed duration per operation.",
		}, []string{"name"}),
		outcomes: make(map[string]map[string]struct{}),
		maxSeen:  make(map[string]float64),
	}

	r.reg.MustRegister(r.durations, r.peak)
	if withRuntime {
		r.reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return r
}

// Record implements Recorder.
func (r *Registry) Record(name string, d time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	secs := d.Seconds()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.durations.WithLabelValues(name, outcome).Observe(secs)

	seen, ok := r.outcomes[name]
	if !ok {
		seen = make(map[string]struct{})
		r.outcomes[name] = seen
	}
	seen[outcome] = struct{}{}

	if prev, ok := r.maxSeen[name]; !ok || secs > prev {
		r.maxSeen[name] = secs
		r.peak.WithLabelValues(name).Set(secs)
	}
}

// Names returns the sorted names of all observations recorded so far.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.outcomes))
	for name := range r.outcomes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot aggregates the observation name across all outcomes.
// It reports false if nothing has been recorded under name.
// No Record is applied halfway through a snapshot.
func (r *Registry) Snapshot(name string) (MetricSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen, ok := r.outcomes[name]
	outcomes := make([]string, 0, len(seen))
	for o := range seen {
		outcomes = append(outcomes, o)
	}
	if !ok {
		return MetricSnapshot{}, false
	}
	sort.Strings(outcomes)

	families, err := r.reg.Gather()
	if err != nil {
		return MetricSnapshot{}, false
	}

	var count uint64
	var total, peak float64
	for _, mf := range families {
		switch mf.GetName() {
		case durationMetric:
			for _, m := range mf.GetMetric() {
				if labelValue(m, "name") != name {
					continue
				}
				h := m.GetHistogram()
				count += h.GetSampleCount()
				total += h.GetSampleSum()
			}
		case maxMetric:
			for _, m := range mf.GetMetric() {
				if labelValue(m, "name") == name {
					peak = m.GetGauge().GetValue()
				}
			}
		}
	}

	return MetricSnapshot{
		Name:     name,
		BaseUnit: "seconds",
		Measurements: []Measurement{
			{Statistic: "COUNT", Value: float64(count)},
			{Statistic: "TOTAL_TIME", Value: total},
			{Statistic: "MAX", Value: peak},
		},
		AvailableTags: []AvailableTag{
			{Tag: "outcome", Values: outcomes},
		},
	}, true
}

// Handler serves the registry in the Prometheus text exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

func labelValue(m *dto.Metric, label string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == label {
			return lp.GetValue()
		}
	}
	return ""
}
