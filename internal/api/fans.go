package api

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
	"github.com/uw2go/uw2go/internal/fans"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ui"
)

// FanStatus is a snapshot of a single fan.
type FanStatus struct {
	ID             string  `json:"id"`
	Label          string  `json:"label"`
	Index          int     `json:"index"`
	Curve          string  `json:"curve,omitempty"`
	Speed          *uint8  `json:"speed,omitempty"`
	LastSetSpeed   *uint8  `json:"lastSetSpeed,omitempty"`
	Temperature    *uint8  `json:"temperature,omitempty"`
	TemperatureAvg float64 `json:"temperatureAvg"`
	MinSpeed       uint8   `json:"minSpeed"`
	FanOff         bool    `json:"fanOff"`
	Auto           bool    `json:"auto"`
}

type SpeedRequest struct {
	Speed *int `json:"speed"`
}

func (s *restService) registerFanEndpoints(rest *echo.Echo) {
	group := rest.Group("/fan")

	group.GET("/", getFans)
	group.POST("/auto/", s.setFansAuto)
	group.GET("/:"+urlParamId+"/", getFan)
	group.POST("/:"+urlParamId+"/speed/", s.setFanSpeed)
}

// returns a list of all currently configured fans
func getFans(c echo.Context) error {
	var data []FanStatus
	for _, fan := range fans.FanMap.Items() {
		data = append(data, newFanStatus(fan))
	}
	sort.Slice(data, func(i, j int) bool {
		return data[i].Index < data[j].Index
	})
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getFan(c echo.Context) error {
	id := c.Param(urlParamId)
	fan, exists := fans.GetFan(id)
	if !exists {
		return returnNotFound(c, id)
	} else {
		return c.JSONPretty(http.StatusOK, newFanStatus(fan), indentationChar)
	}
}

// sets a manual speed for a fan that is not driven by a curve
func (s *restService) setFanSpeed(c echo.Context) error {
	id := c.Param(urlParamId)
	fan, exists := fans.GetFan(id)
	if !exists {
		return returnNotFound(c, id)
	}
	if curve := fan.GetConfig().Curve; curve != "" {
		return c.JSONPretty(http.StatusConflict, &Result{
			Name:    "Conflict",
			Message: fmt.Sprintf("Fan '%s' is controlled by curve '%s'", id, curve),
		}, indentationChar)
	}

	var request SpeedRequest
	if err := c.Bind(&request); err != nil {
		return returnBadRequest(c, err)
	}
	if request.Speed == nil {
		return returnBadRequest(c, errors.New("missing field 'speed'"))
	}
	if *request.Speed < 0 || *request.Speed > int(fans.MaxSpeed) {
		return returnError(c, fmt.Errorf("speed %d: %w", *request.Speed, hal.ErrInvalidArguments))
	}

	speed := uint8(*request.Speed)
	if err := fan.SetSpeed(speed); err != nil {
		return returnError(c, err)
	}
	if err := s.persistence.SaveFanSpeed(id, speed); err != nil {
		ui.Warning("Unable to persist speed of fan %s: %v", id, err)
	}

	return c.JSONPretty(http.StatusOK, newFanStatus(fan), indentationChar)
}

// hands control of all fans back to the device
func (s *restService) setFansAuto(c echo.Context) error {
	if err := fans.SetAllAuto(s.device); err != nil {
		return returnError(c, err)
	}
	for _, id := range fans.FanMap.Keys() {
		if err := s.persistence.DeleteFanSpeed(id); err != nil {
			ui.Warning("Unable to delete persisted speed of fan %s: %v", id, err)
		}
	}
	return c.NoContent(http.StatusOK)
}

func newFanStatus(fan fans.Fan) FanStatus {
	status := FanStatus{
		ID:             fan.GetId(),
		Label:          fan.GetLabel(),
		Index:          fan.GetIndex(),
		Curve:          fan.GetConfig().Curve,
		LastSetSpeed:   fan.GetLastSetSpeed(),
		TemperatureAvg: fan.GetTemperatureAvg(),
		MinSpeed:       fan.GetMinSpeed(),
		FanOff:         fan.Supports(fans.FeatureFanOff),
		Auto:           fan.IsAuto(),
	}
	if speed, err := fan.GetSpeed(); err == nil {
		status.Speed = &speed
	}
	if fan.Supports(fans.FeatureTemperatureSensor) {
		if temp, err := fan.GetTemperature(); err == nil {
			status.Temperature = &temp
		}
	}
	// detach from pointers still owned by the fan
	return reprint.This(status).(FanStatus)
}
