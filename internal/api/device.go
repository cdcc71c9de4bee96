package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/uw2go/uw2go/internal/hal"
)

// DeviceStatus describes the capabilities negotiated with the device.
type DeviceStatus struct {
	Interface     string   `json:"interface"`
	Model         string   `json:"model"`
	ModuleVersion string   `json:"moduleVersion,omitempty"`
	FanCount      int      `json:"fanCount"`
	MinSpeed      uint8    `json:"minSpeedRaw"`
	FansOff       bool     `json:"fansOffAvailable"`
	Profiles      []string `json:"profiles,omitempty"`
}

type moduleVersioner interface {
	ModuleVersion() (string, error)
}

func (s *restService) registerDeviceEndpoints(rest *echo.Echo) {
	rest.GET("/device/", s.getDevice)
}

func (s *restService) getDevice(c echo.Context) error {
	device := s.device

	model, err := device.ModelId()
	if err != nil {
		return returnError(c, err)
	}
	// capabilities missing on this unit are left empty
	minSpeed, err := device.GetFansMinSpeed()
	if err != nil && !errors.Is(err, hal.ErrDeviceNotAvailable) {
		return returnError(c, err)
	}
	fansOff, err := device.GetFansOffAvailable()
	if err != nil && !errors.Is(err, hal.ErrDeviceNotAvailable) {
		return returnError(c, err)
	}
	profiles, err := device.AvailableProfiles()
	if err != nil && !errors.Is(err, hal.ErrDeviceNotAvailable) {
		return returnError(c, err)
	}

	status := DeviceStatus{
		Interface: device.InterfaceId(),
		Model:     model,
		FanCount:  device.FanCount(),
		MinSpeed:  minSpeed,
		FansOff:   fansOff,
		Profiles:  profiles,
	}
	if v, ok := device.(moduleVersioner); ok {
		if version, err := v.ModuleVersion(); err == nil {
			status.ModuleVersion = version
		}
	}
	return c.JSONPretty(http.StatusOK, status, indentationChar)
}
