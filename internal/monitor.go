package internal

import (
	"context"
	"time"

	"github.com/uw2go/uw2go/internal/fans"
	"github.com/uw2go/uw2go/internal/ui"
)

type FanMonitor interface {
	Run(ctx context.Context) error
}

type fanMonitor struct {
	fan         fans.Fan
	pollingRate time.Duration
}

func NewFanMonitor(fan fans.Fan, pollingRate time.Duration) FanMonitor {
	return fanMonitor{
		fan:         fan,
		pollingRate: pollingRate,
	}
}

func (m fanMonitor) Run(ctx context.Context) error {
	tick := time.NewTicker(m.pollingRate)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			m.update()
		}
	}
}

// read the current temperature of the fan and append it to the moving window
func (m fanMonitor) update() {
	temp, err := m.fan.UpdateTemperature()
	if err != nil {
		// the window keeps its last values
		ui.Warning("Error reading temperature of fan %s: %v", m.fan.GetId(), err)
		return
	}
	ui.Debug("Fan %s: %d°C (avg %.1f°C)", m.fan.GetId(), temp, m.fan.GetTemperatureAvg())
}
