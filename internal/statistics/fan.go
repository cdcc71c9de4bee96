package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uw2go/uw2go/internal/fans"
)

const fanSubsystem = "fan"

type FanCollector struct {
	fans           []fans.Fan
	speed          *prometheus.Desc
	temperature    *prometheus.Desc
	temperatureAvg *prometheus.Desc
	auto           *prometheus.Desc
}

func NewFanCollector(fans []fans.Fan) *FanCollector {
	return &FanCollector{
		fans: fans,
		speed: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "speed_percent"),
			"Current speed of the fan in percent",
			[]string{"id"}, nil,
		),
		temperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "temperature_celsius"),
			"Current temperature reported for the fan",
			[]string{"id"}, nil,
		),
		temperatureAvg: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "temperature_avg_celsius"),
			"Moving average of the temperature reported for the fan",
			[]string{"id"}, nil,
		),
		auto: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "auto"),
			"1 if the fan is controlled by the device itself",
			[]string{"id"}, nil,
		),
	}
}

func (collector *FanCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.speed
	ch <- collector.temperature
	ch <- collector.temperatureAvg
	ch <- collector.auto
}

// Collect implements required collect function for all prometheus collectors
func (collector *FanCollector) Collect(ch chan<- prometheus.Metric) {
	for _, fan := range collector.fans {
		fanId := fan.GetId()

		speed, err := fan.GetSpeed()
		if err != nil {
			logSkipped("speed", err)
		} else {
			ch <- prometheus.MustNewConstMetric(collector.speed, prometheus.GaugeValue, float64(speed), fanId)
		}

		if fan.Supports(fans.FeatureTemperatureSensor) {
			temp, err := fan.GetTemperature()
			if err != nil {
				logSkipped("temperature", err)
			} else {
				ch <- prometheus.MustNewConstMetric(collector.temperature, prometheus.GaugeValue, float64(temp), fanId)
			}
			ch <- prometheus.MustNewConstMetric(collector.temperatureAvg, prometheus.GaugeValue, fan.GetTemperatureAvg(), fanId)
		}

		auto := 0.0
		if fan.IsAuto() {
			auto = 1
		}
		ch <- prometheus.MustNewConstMetric(collector.auto, prometheus.GaugeValue, auto, fanId)
	}
}
