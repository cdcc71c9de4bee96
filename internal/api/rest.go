package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/persistence"
)

type restService struct {
	device      hal.HardwareDevice
	persistence persistence.Persistence
}

// CreateRestService creates the REST api for the given device. Request metrics are
// registered with the given registerer.
func CreateRestService(device hal.HardwareDevice, pers persistence.Persistence, registerer prometheus.Registerer) *echo.Echo {
	echoRest := echo.New()
	echoRest.HideBanner = true
	echoRest.HidePort = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())
	echoRest.Use(middleware.Recover())
	echoRest.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "uw2go",
		Subsystem:  "api",
		Registerer: registerer,
	}))

	echoRest.GET("/alive/", isAlive)

	s := &restService{
		device:      device,
		persistence: pers,
	}
	s.registerFanEndpoints(echoRest)
	s.registerDeviceEndpoints(echoRest)
	s.registerProfileEndpoints(echoRest)
	registerCurveEndpoints(echoRest)

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
