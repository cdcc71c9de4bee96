package global

import (
	"fmt"

	"github.com/uw2go/uw2go/internal/configuration"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/persistence"
	"github.com/uw2go/uw2go/internal/ui"
)

var (
	CfgFile string
	NoColor bool
	NoStyle bool
	Verbose bool
)

// LoadConfig reads the configuration file, if any, into configuration.CurrentConfig
func LoadConfig() {
	configPath := configuration.DetectConfigFile()
	if configPath != "" {
		ui.Debug("Using configuration file at: %s", configPath)
	}
	configuration.LoadConfig()
}

// OpenDevice opens the configured tuxedo_io device
func OpenDevice() (*hal.UniwillHardware, error) {
	LoadConfig()
	device, err := hal.Open(configuration.CurrentConfig.Device)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", configuration.CurrentConfig.Device, err)
	}
	return device, nil
}

// Persistence returns the configured persistence, or nil if it cannot be initialized
func Persistence() persistence.Persistence {
	pers := persistence.NewPersistence(configuration.CurrentConfig.DbPath)
	if err := pers.Init(); err != nil {
		ui.Warning("Unable to initialize persistence at %s, setting will not be restored: %v", configuration.CurrentConfig.DbPath, err)
		return nil
	}
	return pers
}
