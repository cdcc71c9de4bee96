package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uw2go/uw2go/internal/hal"
)

const deviceSubsystem = "device"

// DeviceCollector exports the capabilities negotiated with the device.
type DeviceCollector struct {
	device hal.HardwareDevice

	info         *prometheus.Desc
	profileCount *prometheus.Desc
	minSpeed     *prometheus.Desc
	fansOff      *prometheus.Desc
}

func NewDeviceCollector(device hal.HardwareDevice) *DeviceCollector {
	return &DeviceCollector{
		device: device,
		info: prometheus.NewDesc(prometheus.BuildFQName(namespace, deviceSubsystem, "info"),
			"Identification of the device, always 1",
			[]string{"interface", "model"}, nil,
		),
		profileCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, deviceSubsystem, "profiles_available"),
			"Number of performance profiles supported by the device",
			nil, nil,
		),
		minSpeed: prometheus.NewDesc(prometheus.BuildFQName(namespace, deviceSubsystem, "fans_min_speed_percent"),
			"Lowest fan speed accepted by the device",
			nil, nil,
		),
		fansOff: prometheus.NewDesc(prometheus.BuildFQName(namespace, deviceSubsystem, "fans_off_available"),
			"1 if the device allows the fans to stop",
			nil, nil,
		),
	}
}

func (collector *DeviceCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.info
	ch <- collector.profileCount
	ch <- collector.minSpeed
	ch <- collector.fansOff
}

// Collect implements required collect function for all prometheus collectors
func (collector *DeviceCollector) Collect(ch chan<- prometheus.Metric) {
	device := collector.device

	model, err := device.ModelId()
	if err != nil {
		logSkipped("device info", err)
	} else {
		ch <- prometheus.MustNewConstMetric(collector.info, prometheus.GaugeValue, 1, device.InterfaceId(), model)
	}

	profiles, err := device.AvailableProfiles()
	if err != nil {
		logSkipped("profile", err)
	} else {
		ch <- prometheus.MustNewConstMetric(collector.profileCount, prometheus.GaugeValue, float64(len(profiles)))
	}

	minSpeed, err := device.GetFansMinSpeed()
	if err != nil {
		logSkipped("min speed", err)
	} else {
		ch <- prometheus.MustNewConstMetric(collector.minSpeed, prometheus.GaugeValue, float64(hal.RawToPercent(int32(minSpeed))))
	}

	fansOff, err := device.GetFansOffAvailable()
	if err != nil {
		logSkipped("fans off", err)
	} else {
		value := 0.0
		if fansOff {
			value = 1
		}
		ch <- prometheus.MustNewConstMetric(collector.fansOff, prometheus.GaugeValue, value)
	}
}
