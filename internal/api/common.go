package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/uw2go/uw2go/internal/hal"
)

const (
	urlParamId      = "id"
	indentationChar = "  "
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
)

// return a "not found" message
func returnNotFound(c echo.Context, id string) (err error) {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    "Not found",
		Message: "No item with id '" + id + "' found",
	}, indentationChar)
}

// return a "bad request" message
func returnBadRequest(c echo.Context, e error) (err error) {
	return c.JSONPretty(http.StatusBadRequest, &Result{
		Name:    "Bad Request",
		Message: e.Error(),
	}, indentationChar)
}

// return the error message of an error, using a status code matching the hal error kind
func returnError(c echo.Context, e error) (err error) {
	status := http.StatusInternalServerError
	name := "Unknown Error"
	switch {
	case errors.Is(e, hal.ErrInvalidArguments):
		status = http.StatusBadRequest
		name = "Invalid Arguments"
	case errors.Is(e, hal.ErrDeviceNotAvailable):
		status = http.StatusServiceUnavailable
		name = "Device Not Available"
	case errors.Is(e, hal.ErrUnimplemented):
		status = http.StatusNotImplemented
		name = "Not Implemented"
	}
	return c.JSONPretty(status, &Result{
		Name:    name,
		Message: e.Error(),
	}, indentationChar)
}
