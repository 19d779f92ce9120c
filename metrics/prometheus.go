package metrics

import (
	"net/http"

	"go.uber.org/zap/zapcore"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	//promethus default namespace
	namespace = "glide"

	//promethues default label key
	command   = "command"
	labelName = "level"
)

var (
	//Label value slice when creating prometheus object
	commandLabel = []string{command}

	// global prometheus object
	gm *Metrics
)

//Metrics prometheus statistics of the binding
type Metrics struct {
	//command
	CommandCallHistogramVec   *prometheus.HistogramVec
	CommandFailuresCounterVec *prometheus.CounterVec
	DecodeMismatchCounterVec  *prometheus.CounterVec

	//batch and scan
	BatchSizeHistogram  prometheus.Histogram
	ScanPagesCounterVec *prometheus.CounterVec

	//logger
	LogMetricsCounterVec *prometheus.CounterVec
}

//init create global object
func init() {
	gm = &Metrics{}

	gm.CommandCallHistogramVec = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_call_second",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 20),
			Help:      "The cost times of command call",
		}, commandLabel)
	prometheus.MustRegister(gm.CommandCallHistogramVec)

	gm.CommandFailuresCounterVec = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_failures_total",
			Help:      "The total of engine command failures",
		}, commandLabel)
	prometheus.MustRegister(gm.CommandFailuresCounterVec)

	gm.DecodeMismatchCounterVec = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_mismatch_total",
			Help:      "The total of reply shape mismatches",
		}, commandLabel)
	prometheus.MustRegister(gm.DecodeMismatchCounterVec)

	gm.BatchSizeHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			Help:      "The number of buffered commands per executed batch",
		})
	prometheus.MustRegister(gm.BatchSizeHistogram)

	gm.ScanPagesCounterVec = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_pages_total",
			Help:      "The total of scan pages fetched",
		}, commandLabel)
	prometheus.MustRegister(gm.ScanPagesCounterVec)

	gm.LogMetricsCounterVec = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logs_entries_total",
			Help:      "Number of logs of certain level",
		},
		[]string{labelName},
	)
	prometheus.MustRegister(gm.LogMetricsCounterVec)

	http.Handle("/glide/metrics", prometheus.Handler())
}

//GetMetrics return metrics object
func GetMetrics() *Metrics {
	return gm
}

//Measure logger level rate
func Measure(e zapcore.Entry) error {
	label := e.LoggerName + "_" + e.Level.String()
	gm.LogMetricsCounterVec.WithLabelValues(label).Inc()
	return nil
}
