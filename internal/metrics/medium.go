// Package metrics exposes Prometheus counters describing medium wear.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

var (
	MediumReads = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wearlevel_medium_reads_total",
		Help: "Total number of raw byte reads issued to the medium",
	})

	MediumWrites = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wearlevel_medium_writes_total",
		Help: "Total number of raw byte writes that changed a cell",
	})

	MediumSkippedWrites = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wearlevel_medium_skipped_writes_total",
		Help: "Total number of raw byte writes skipped because the cell already held the value",
	})

	MaxCellWrites = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wearlevel_medium_max_cell_writes",
		Help: "Physical writes seen by the most worn cell since start",
	})
)

func init() {
	prometheus.MustRegister(MediumReads, MediumWrites, MediumSkippedWrites, MaxCellWrites)
}

// Snapshot is a point-in-time copy of the wear metrics.
type Snapshot struct {
	Reads         float64
	Writes        float64
	SkippedWrites float64
	MaxCellWrites float64
}

// Collect reads the current metric values.
func Collect() Snapshot {
	return Snapshot{
		Reads:         counterValue(MediumReads),
		Writes:        counterValue(MediumWrites),
		SkippedWrites: counterValue(MediumSkippedWrites),
		MaxCellWrites: gaugeValue(MaxCellWrites),
	}
}

func counterValue(c prometheus.Counter) float64 {
	m := &dto.Metric{}
	_ = c.Write(m)
	return m.GetCounter().GetValue()
}

func gaugeValue(g prometheus.Gauge) float64 {
	m := &dto.Metric{}
	_ = g.Write(m)
	return m.GetGauge().GetValue()
}
