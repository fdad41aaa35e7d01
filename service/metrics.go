package service

import "github.com/prometheus/client_golang/prometheus"

var (
	syncRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "magic_sync_runs_total",
			Help: "Product sync runs by mode and result",
		},
		[]string{"mode", "result"},
	)

	syncRunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "magic_sync_run_duration_seconds",
			Help:    "Product sync run duration in seconds",
			Buckets: []float64{1, 5, 30, 60, 300, 900, 1800},
		},
		[]string{"mode"},
	)

	// 单条 SKU 的处理结果
	recordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "magic_sync_records_total",
			Help: "Product records processed by result",
		},
		[]string{"result"},
	)

	lastSuccessTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "magic_sync_last_success_timestamp_seconds",
			Help: "Unix time of the last successful sync run",
		},
	)
)

func init() {
	prometheus.MustRegister(syncRunsTotal, syncRunDuration, recordsTotal, lastSuccessTimestamp)
}
