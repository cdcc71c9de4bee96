package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uw2go/uw2go/internal/api"
	"github.com/uw2go/uw2go/internal/configuration"
	"github.com/uw2go/uw2go/internal/controller"
	"github.com/uw2go/uw2go/internal/curves"
	"github.com/uw2go/uw2go/internal/fans"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/persistence"
	"github.com/uw2go/uw2go/internal/statistics"
	"github.com/uw2go/uw2go/internal/ui"
)

func RunDaemon() {
	if getProcessOwner() != "root" {
		ui.Fatal("Fan control requires root permissions to be able to access %s, please run uw2go as root", configuration.CurrentConfig.Device)
	}

	device, err := hal.Open(configuration.CurrentConfig.Device)
	if err != nil {
		ui.ErrorAndNotify("Device Error", "Unable to open uniwill device %s: %v", configuration.CurrentConfig.Device, err)
		os.Exit(1)
	}
	defer func() {
		_ = device.Close()
	}()

	pers := persistence.NewPersistence(configuration.CurrentConfig.DbPath)
	if err := pers.Init(); err != nil {
		ui.Fatal("Unable to initialize persistence at %s: %v", configuration.CurrentConfig.DbPath, err)
	}

	fanList, curveList, err := InitializeObjects(device)
	if err != nil {
		ui.Fatal("%v", err)
	}
	statistics.Register(statistics.NewDeviceCollector(device))
	statistics.Register(statistics.NewFanCollector(fanList))
	statistics.Register(statistics.NewCurveCollector(curveList))

	ApplyStartupState(device, pers, fanList)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	{
		enabled := configuration.CurrentConfig.Statistics.Enabled
		if enabled {
			// === Prometheus Exporter
			port := configuration.CurrentConfig.Statistics.Port
			if port <= 0 || port >= 65535 {
				port = 9000
			}
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			server := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

			g.Add(func() error {
				ui.Info("Starting statistics server on %s...", server.Addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("cannot start prometheus metrics endpoint: %w", err)
				}
				return nil
			}, func(err error) {
				ui.Info("Stopping statistics server...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping statistics server: %v", err)
				}
			})
		}
	}
	{
		enabled := configuration.CurrentConfig.Api.Enabled
		if enabled {
			// === REST Api
			rest := api.CreateRestService(device, pers, prometheus.DefaultRegisterer)
			addr := fmt.Sprintf("%s:%d", configuration.CurrentConfig.Api.Host, configuration.CurrentConfig.Api.Port)

			g.Add(func() error {
				ui.Info("Starting REST api server on %s...", addr)
				if err := rest.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("cannot start REST api: %w", err)
				}
				return nil
			}, func(err error) {
				ui.Info("Stopping REST api server...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := rest.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping REST api server: %v", err)
				}
			})
		}
	}
	{
		// === temperature monitoring
		for _, fan := range fanList {
			f := fan
			if !f.Supports(fans.FeatureTemperatureSensor) {
				continue
			}
			mon := NewFanMonitor(f, configuration.CurrentConfig.FanPollingRate)

			g.Add(func() error {
				err := mon.Run(ctx)
				ui.Info("Fan monitor for fan %s stopped.", f.GetId())
				return err
			}, func(err error) {
				cancel()
			})
		}
	}
	{
		// === fan controllers
		for _, fan := range fanList {
			f := fan
			curveId := f.GetConfig().Curve
			if curveId == "" {
				continue
			}
			if !f.Supports(fans.FeatureTemperatureSensor) {
				ui.WarningAndNotify("Fan Control", "Fan %s has no temperature sensor, leaving it in automatic mode", f.GetId())
				continue
			}
			curve, ok := curves.GetSpeedCurve(curveId)
			if !ok {
				ui.Fatal("Curve %s of fan %s not found", curveId, f.GetId())
			}
			fanController := controller.NewFanController(f, curve, configuration.CurrentConfig.ControllerAdjustmentTickRate)

			g.Add(func() error {
				err := fanController.Run(ctx)
				ui.Info("Fan controller for fan %s stopped.", f.GetId())
				return err
			}, func(err error) {
				cancel()
			})
		}
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case s := <-sig:
				ui.Info("Received %s signal, exiting...", s)
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	err = g.Run()

	ui.Info("Handing fan control back to the device...")
	if restoreErr := fans.SetAllAuto(device); restoreErr != nil {
		ui.ErrorAndNotify("Fan Control Error", "Unable to restore automatic fan control: %v", restoreErr)
	}

	if err != nil {
		ui.Error("%v", err)
		_ = device.Close()
		os.Exit(1)
	}
	ui.Info("Done.")
}

// InitializeObjects creates the configured curves and fans and registers them
func InitializeObjects(device hal.HardwareDevice) ([]fans.Fan, []curves.SpeedCurve, error) {
	var curveList []curves.SpeedCurve
	for _, config := range configuration.CurrentConfig.Curves {
		curve, err := curves.NewSpeedCurve(config)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to process curve configuration %s: %w", config.ID, err)
		}
		curveList = append(curveList, curve)
		curves.SpeedCurveMap.Set(config.ID, curve)
	}

	var fanList []fans.Fan
	for _, config := range configuration.CurrentConfig.Fans {
		fan, err := fans.NewFan(config, device, configuration.CurrentConfig.FanRollingWindowSize)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to process fan configuration %s: %w", config.ID, err)
		}
		fans.FanMap.Set(config.ID, fan)
		fanList = append(fanList, fan)
	}

	if len(fanList) == 0 {
		ui.Warning("No fans configured, only the profile is managed")
	}

	return fanList, curveList, nil
}

// ApplyStartupState applies the configured profile and restores persisted settings
func ApplyStartupState(device hal.HardwareDevice, pers persistence.Persistence, fanList []fans.Fan) {
	restore := configuration.CurrentConfig.RestoreOnStart.Get()

	profile := configuration.CurrentConfig.Profile
	if profile == nil && restore {
		stored, err := pers.LoadProfile()
		if err == nil {
			profile = &stored
		} else if errors.Is(err, hal.ErrInvalidArguments) {
			ui.Warning("Dropping unknown persisted profile: %v", err)
			if err := pers.DeleteProfile(); err != nil {
				ui.Warning("Unable to delete persisted profile: %v", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			ui.Warning("Unable to load persisted profile: %v", err)
		}
	}
	if profile != nil {
		if err := device.SetProfile(profile.String()); err != nil {
			ui.Warning("Unable to apply profile %s: %v", profile, err)
		} else {
			ui.Info("Applied profile %s", profile)
			if err := pers.SaveProfile(*profile); err != nil {
				ui.Warning("Unable to persist profile %s: %v", profile, err)
			}
		}
	}

	if !restore {
		return
	}
	speeds, err := pers.LoadFanSpeeds()
	if err != nil {
		ui.Warning("Unable to load persisted fan speeds: %v", err)
		return
	}
	for _, fan := range fanList {
		speed, ok := speeds[fan.GetId()]
		if !ok || fan.GetConfig().Curve != "" {
			continue
		}
		if err := fan.SetSpeed(speed); err != nil {
			ui.Warning("Unable to restore speed of fan %s: %v", fan.GetId(), err)
			continue
		}
		ui.Info("Restored speed of fan %s to %d%%", fan.GetId(), speed)
	}
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
	}
	return strings.TrimSpace(string(stdout))
}
