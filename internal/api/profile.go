package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ui"
)

type ProfileStatus struct {
	Available []string `json:"available"`
	// Current is the profile last applied by uw2go, the device itself cannot be queried
	Current string `json:"current,omitempty"`
}

type ProfileRequest struct {
	Profile string `json:"profile"`
}

func (s *restService) registerProfileEndpoints(rest *echo.Echo) {
	group := rest.Group("/profile")

	group.GET("/", s.getProfile)
	group.PUT("/", s.setProfile)
}

func (s *restService) getProfile(c echo.Context) error {
	available, err := s.device.AvailableProfiles()
	if err != nil {
		return returnError(c, err)
	}

	status := ProfileStatus{Available: available}
	current, err := s.persistence.LoadProfile()
	if err == nil {
		status.Current = current.String()
	} else if !errors.Is(err, os.ErrNotExist) {
		ui.Warning("Unable to load persisted profile: %v", err)
	}
	return c.JSONPretty(http.StatusOK, status, indentationChar)
}

func (s *restService) setProfile(c echo.Context) error {
	var request ProfileRequest
	if err := c.Bind(&request); err != nil {
		return returnBadRequest(c, err)
	}

	profile, err := hal.ParseProfile(request.Profile)
	if err != nil {
		return returnError(c, err)
	}
	if err := s.device.SetProfile(request.Profile); err != nil {
		return returnError(c, fmt.Errorf("set profile %s: %w", request.Profile, err))
	}
	if err := s.persistence.SaveProfile(profile); err != nil {
		ui.Warning("Unable to persist profile %s: %v", profile, err)
	}

	return s.getProfile(c)
}
