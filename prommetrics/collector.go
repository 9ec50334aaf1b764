// Package prommetrics exports collections.List mutation metrics to
// Prometheus.
//
//	c, err := prommetrics.New(prometheus.DefaultRegisterer, "myapp")
//	cats, err := collections.New(collections.Config[Cat, Cat]{Metrics: c})
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hasbyte1/go-indexed-collections/collections"
)

const subsystem = "collection"

// Result label values.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
)

// Collector implements collections.MetricsCollector on Prometheus vectors.
// One Collector may be shared by any number of lists.
type Collector struct {
	Operations *prometheus.CounterVec
	Elements   *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

var _ collections.MetricsCollector = (*Collector)(nil)

// New creates the vectors under namespace and registers them on reg.
// A nil reg skips registration.
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operations_total",
			Help:      "Mutating operations by operation and result",
		}, []string{"op", "result"}),
		Elements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "elements_total",
			Help:      "Elements indexed or retracted by operation and direction",
		}, []string{"op", "direction"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operation_duration_seconds",
			Help:      "Time spent maintaining indices and groups per operation",
			Buckets:   []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3, 1e-2},
		}, []string{"op"}),
	}
	if reg != nil {
		for _, col := range []prometheus.Collector{c.Operations, c.Elements, c.Duration} {
			if err := reg.Register(col); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// MustNew is like New but panics on registration errors.
func MustNew(reg prometheus.Registerer, namespace string) *Collector {
	c, err := New(reg, namespace)
	if err != nil {
		panic(err)
	}
	return c
}

// RecordInsert implements collections.MetricsCollector.
func (c *Collector) RecordInsert(op collections.Op, count int, duration time.Duration, err error) {
	result := ResultOK
	if err != nil {
		result = ResultRejected
	}
	c.Operations.WithLabelValues(string(op), result).Inc()
	c.Elements.WithLabelValues(string(op), "in").Add(float64(count))
	c.Duration.WithLabelValues(string(op)).Observe(duration.Seconds())
}

// RecordRemove implements collections.MetricsCollector.
func (c *Collector) RecordRemove(op collections.Op, count int, duration time.Duration) {
	c.Operations.WithLabelValues(string(op), ResultOK).Inc()
	c.Elements.WithLabelValues(string(op), "out").Add(float64(count))
	c.Duration.WithLabelValues(string(op)).Observe(duration.Seconds())
}
