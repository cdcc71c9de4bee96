package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uw2go/uw2go/internal/configuration"
	"github.com/uw2go/uw2go/internal/curves"
	"github.com/uw2go/uw2go/internal/fans"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ioctl"
	"github.com/uw2go/uw2go/internal/persistence"
	"github.com/uw2go/uw2go/internal/testingutils"
)

type testEnv struct {
	rest        *echo.Echo
	channel     *testingutils.FakeChannel
	persistence persistence.Persistence
}

func newTestEnv(t *testing.T) testEnv {
	channel := testingutils.NewUniwillChannel()
	channel.Set(ioctl.UwFanSpeed0, 100)
	channel.Set(ioctl.UwFanSpeed1, 50)
	device, err := hal.NewUniwillHardware(channel)
	require.NoError(t, err)

	pers := persistence.NewPersistence(filepath.Join(t.TempDir(), "uw2go.db"))
	require.NoError(t, pers.Init())

	curve, err := curves.NewSpeedCurve(configuration.CurveConfig{
		ID:    "linear",
		Steps: configuration.CurveSteps{40: 20, 80: 100},
	})
	require.NoError(t, err)
	curves.SpeedCurveMap.Set(curve.GetId(), curve)

	for _, config := range []configuration.FanConfig{
		{ID: "cpu", Index: 0},
		{ID: "gpu", Index: 1, Curve: "linear"},
	} {
		fan, err := fans.NewFan(config, device, 3)
		require.NoError(t, err)
		fans.FanMap.Set(config.ID, fan)
	}

	t.Cleanup(func() {
		fans.FanMap.Clear()
		curves.SpeedCurveMap.Clear()
	})

	return testEnv{
		rest:        CreateRestService(device, pers, prometheus.NewRegistry()),
		channel:     channel,
		persistence: pers,
	}
}

func (env testEnv) request(method string, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.rest.ServeHTTP(rec, req)
	return rec
}

func TestAlive(t *testing.T) {
	// GIVEN
	env := newTestEnv(t)

	// WHEN
	rec := env.request(http.MethodGet, "/alive", "")

	// THEN
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetFans(t *testing.T) {
	// GIVEN
	env := newTestEnv(t)

	// WHEN
	rec := env.request(http.MethodGet, "/fan/", "")

	// THEN
	require.Equal(t, http.StatusOK, rec.Code)
	var result []FanStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result, 2)
	assert.Equal(t, "cpu", result[0].ID)
	assert.Equal(t, uint8(50), *result[0].Speed)
	assert.Equal(t, uint8(45), *result[0].Temperature)
	assert.Equal(t, "gpu", result[1].ID)
	assert.Equal(t, "linear", result[1].Curve)
}

func TestGetFan_NotFound(t *testing.T) {
	// GIVEN
	env := newTestEnv(t)

	// WHEN
	rec := env.request(http.MethodGet, "/fan/unknown/", "")

	// THEN
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetFanSpeed(t *testing.T) {
	// GIVEN
	env := newTestEnv(t)

	// WHEN
	rec := env.request(http.MethodPost, "/fan/cpu/speed/", `{"speed": 50}`)

	// THEN
	require.Equal(t, http.StatusOK, rec.Code)
	write, ok := env.channel.LastWrite()
	require.True(t, ok)
	assert.Equal(t, testingutils.Write{Request: ioctl.UwWriteFanSpeed0, Value: 100}, write)

	speeds, err := env.persistence.LoadFanSpeeds()
	require.NoError(t, err)
	assert.Equal(t, map[string]uint8{"cpu": 50}, speeds)
}

func TestSetFanSpeed_InvalidSpeed(t *testing.T) {
	// GIVEN
	env := newTestEnv(t)

	// WHEN
	rec := env.request(http.MethodPost, "/fan/cpu/speed/", `{"speed": 101}`)

	// THEN
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, env.channel.WriteCount())
}

func TestSetFanSpeed_MissingSpeed(t *testing.T) {
	// GIVEN
	env := newTestEnv(t)

	// WHEN
	rec := env.request(http.MethodPost, "/fan/cpu/speed/", `{}`)

	// THEN
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetFanSpeed_CurveControlled(t *testing.T) {
	// GIVEN
	env := newTestEnv(t)

	// WHEN
	rec := env.request(http.MethodPost, "/fan/gpu/speed/", `{"speed": 50}`)

	// THEN
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 0, env.channel.WriteCount())
}

func TestSetFansAuto(t *testing.T) {
	// GIVEN
	env := newTestEnv(t)
	require.Equal(t, http.StatusOK, env.request(http.MethodPost, "/fan/cpu/speed/", `{"speed": 50}`).Code)

	// WHEN
	rec := env.request(http.MethodPost, "/fan/auto/", "")

	// THEN
	require.Equal(t, http.StatusOK, rec.Code)
	write, ok := env.channel.LastWrite()
	require.True(t, ok)
	assert.Equal(t, ioctl.UwWriteFanAuto, write.Request)

	speeds, err := env.persistence.LoadFanSpeeds()
	require.NoError(t, err)
	assert.Empty(t, speeds)
}

func TestGetDevice(t *testing.T) {
	// GIVEN
	env := newTestEnv(t)

	// WHEN
	rec := env.request(http.MethodGet, "/device/", "")

	// THEN
	require.Equal(t, http.StatusOK, rec.Code)
	var result DeviceStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, DeviceStatus{
		Interface:     "uniwill",
		Model:         "19",
		ModuleVersion: "0.3.6",
		FanCount:      2,
		MinSpeed:      20,
		FansOff:       true,
		Profiles:      []string{"power_save", "enthusiast", "overboost"},
	}, result)
}

func TestSetProfile(t *testing.T) {
	// GIVEN
	env := newTestEnv(t)

	// WHEN
	rec := env.request(http.MethodPut, "/profile/", `{"profile": "enthusiast"}`)

	// THEN
	require.Equal(t, http.StatusOK, rec.Code)
	write, ok := env.channel.LastWrite()
	require.True(t, ok)
	assert.Equal(t, testingutils.Write{Request: ioctl.UwWritePerfProfile, Value: 2}, write)

	var result ProfileStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "enthusiast", result.Current)
}

func TestSetProfile_Unknown(t *testing.T) {
	// GIVEN
	env := newTestEnv(t)

	// WHEN
	rec := env.request(http.MethodPut, "/profile/", `{"profile": "turbo"}`)

	// THEN
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, env.channel.WriteCount())
}

func TestGetCurve(t *testing.T) {
	// GIVEN
	env := newTestEnv(t)

	// WHEN
	rec := env.request(http.MethodGet, "/curve/linear/", "")

	// THEN
	require.Equal(t, http.StatusOK, rec.Code)
	var result CurveStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, map[int]int{40: 20, 80: 100}, result.Steps)
}

func TestGetDevice_ProfilesUnavailable(t *testing.T) {
	// GIVEN
	env := newTestEnv(t)
	env.channel.Set(ioctl.UwProfsAvailable, 1)

	// WHEN
	rec := env.request(http.MethodGet, "/device/", "")

	// THEN
	require.Equal(t, http.StatusOK, rec.Code)
	var result DeviceStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "19", result.Model)
	assert.Empty(t, result.Profiles)
	assert.True(t, result.FansOff)
}

func TestGetDevice_TransportError(t *testing.T) {
	// GIVEN
	env := newTestEnv(t)
	env.channel.Fail(ioctl.UwFansMinSpeed, errors.New("io error"))

	// WHEN
	rec := env.request(http.MethodGet, "/device/", "")

	// THEN
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
