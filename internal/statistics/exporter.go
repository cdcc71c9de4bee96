package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ui"
)

const (
	namespace = "uw2go"
)

func Register(collector prometheus.Collector) {
	prometheus.MustRegister(collector)
}

// logSkipped logs a metric that could not be collected, capabilities missing on the device are expected
func logSkipped(metric string, err error) {
	if hal.IsUnsupported(err) {
		ui.Debug("Skipping %s metric: %v", metric, err)
	} else {
		ui.Warning("Unable to collect %s metric: %v", metric, err)
	}
}
