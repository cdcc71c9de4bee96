package api

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
	"github.com/uw2go/uw2go/internal/curves"
)

type CurveStatus struct {
	ID    string      `json:"id"`
	Steps map[int]int `json:"steps"`
	Value uint8       `json:"value"`
}

func registerCurveEndpoints(rest *echo.Echo) {
	group := rest.Group("/curve")

	group.GET("/", getCurves)
	group.GET("/:"+urlParamId+"/", getCurve)
}

func getCurves(c echo.Context) error {
	var data []CurveStatus
	for _, curve := range curves.SpeedCurveMap.Items() {
		data = append(data, newCurveStatus(curve))
	}
	sort.Slice(data, func(i, j int) bool {
		return data[i].ID < data[j].ID
	})
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getCurve(c echo.Context) error {
	id := c.Param(urlParamId)
	curve, exists := curves.GetSpeedCurve(id)
	if !exists {
		return returnNotFound(c, id)
	} else {
		return c.JSONPretty(http.StatusOK, newCurveStatus(curve), indentationChar)
	}
}

func newCurveStatus(curve curves.SpeedCurve) CurveStatus {
	status := CurveStatus{
		ID:    curve.GetId(),
		Value: curve.CurrentValue(),
	}
	if linear, ok := curve.(*curves.LinearSpeedCurve); ok {
		// the config is shared with the running curve
		status.Steps = reprint.This(map[int]int(linear.Config.Steps)).(map[int]int)
	}
	return status
}
