package prom

import (
	"net/http"
	"sync"

	"github.com/mobileshop/pos/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric subsystems.
const (
	SystemSales = "sales"
	SystemScans = "scans"
	SystemStore = "store"
)

// Metric names.
const (
	MetricSalesCompleted   = "completed_total"
	MetricScansTotal       = "resolved_total"
	MetricCheckpointsTotal = "checkpoints_total"
	MetricBackupsTotal     = "backups_total"
)

var createMetricLock = &sync.Mutex{}
var namespace = "none"

var MetricSystemEnabled = false

var metricCounters = make(map[string]prometheus.Counter)
var metricCounterVecs = make(map[string]*prometheus.CounterVec)

var defaultLabels prometheus.Labels

// Create registers every POS metric. Metrics stay disabled (all helpers
// no-op) unless this is called.
func Create(env string, nameSpace string) error {
	defaultLabels = prometheus.Labels{"env": env}
	namespace = nameSpace
	MetricSystemEnabled = true

	var err error
	hasError := func(e error) {
		if err == nil && e != nil {
			err = e
		}
	}

	hasError(createCounterVec(SystemSales, MetricSalesCompleted, []string{"result"}))
	hasError(createCounterVec(SystemScans, MetricScansTotal, []string{"result"}))
	hasError(createCounter(SystemStore, MetricCheckpointsTotal))
	hasError(createCounter(SystemStore, MetricBackupsTotal))

	return err
}

// ListenAndServe exposes /metrics on a local debug address. The POS itself
// has no network surface; this listener exists for diagnostics only.
func ListenAndServe(addr string, url string) {
	mux := http.NewServeMux()
	mux.Handle(url, promhttp.Handler())
	logger.Info("[metrics-server] listening...", "addr", addr, "url", url)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Panic("[metrics-server] http listen error", "error", err)
	}
}

func createCounter(subsystem, name string) error {
	createMetricLock.Lock()
	defer createMetricLock.Unlock()
	metricCounters[subsystem+name] = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		ConstLabels: defaultLabels,
	})
	return prometheus.Register(metricCounters[subsystem+name])
}

func createCounterVec(subsystem, name string, labels []string) error {
	createMetricLock.Lock()
	defer createMetricLock.Unlock()
	metricCounterVecs[subsystem+name] = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		ConstLabels: defaultLabels,
	}, labels)
	return prometheus.Register(metricCounterVecs[subsystem+name])
}

func IncCounter(subsystem, name string) {
	AddCounter(subsystem, name, 1)
}

func AddCounter(subsystem, name string, number float64) {
	if !MetricSystemEnabled {
		return
	}
	if v, ok := metricCounters[subsystem+name]; ok {
		v.Add(number)
		return
	}
	logger.Warn("[metrics-server] counter not found", "subsystem", subsystem, "name", name)
}

func IncCounterVec(subsystem, name string, labelValues ...string) {
	AddCounterVec(subsystem, name, 1, labelValues...)
}

func AddCounterVec(subsystem, name string, num float64, labelValues ...string) {
	if !MetricSystemEnabled {
		return
	}
	if v, ok := metricCounterVecs[subsystem+name]; ok {
		v.WithLabelValues(labelValues...).Add(num)
		return
	}
	logger.Warn("[metrics-server] counter vec not found", "subsystem", subsystem, "name", name)
}
