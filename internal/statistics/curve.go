package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uw2go/uw2go/internal/curves"
)

const curveSubsystem = "curve"

// CurveCollector exports the last evaluation of every configured speed curve.
type CurveCollector struct {
	curves []curves.SpeedCurve

	targetSpeed *prometheus.Desc
	steps       *prometheus.Desc
}

func NewCurveCollector(speedCurves []curves.SpeedCurve) *CurveCollector {
	return &CurveCollector{
		curves: speedCurves,
		targetSpeed: prometheus.NewDesc(prometheus.BuildFQName(namespace, curveSubsystem, "target_speed_percent"),
			"Fan speed in percent requested by the last evaluation of the curve",
			[]string{"curve"}, nil,
		),
		steps: prometheus.NewDesc(prometheus.BuildFQName(namespace, curveSubsystem, "steps"),
			"Number of temperature steps the curve interpolates between",
			[]string{"curve"}, nil,
		),
	}
}

func (collector *CurveCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.targetSpeed
	ch <- collector.steps
}

func (collector *CurveCollector) Collect(ch chan<- prometheus.Metric) {
	for _, curve := range collector.curves {
		id := curve.GetId()
		ch <- prometheus.MustNewConstMetric(collector.targetSpeed, prometheus.GaugeValue, float64(curve.CurrentValue()), id)

		if linear, ok := curve.(*curves.LinearSpeedCurve); ok {
			ch <- prometheus.MustNewConstMetric(collector.steps, prometheus.GaugeValue, float64(len(linear.Config.Steps)), id)
		}
	}
}
