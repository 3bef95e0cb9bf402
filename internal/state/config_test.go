package state_test

import (
	"testing"

	sensor_config "github.com/airberry/airberry/internal/sensor/config"
	"github.com/airberry/airberry/internal/state"
	state_new "github.com/airberry/airberry/internal/state/new"
	"github.com/airberry/airberry/log2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	fs := state.NewMockFullReader(map[string]string{
		"main": `
sensor {
  live   = true
  device = "/dev/ttyUSB7"
}
tele {
  enable            = true
  connection_string = "HostName=hub.test;DeviceId=air-01;"
}`,
	})
	c, err := state.ReadConfig(log, fs, "main")
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyUSB7", c.Sensor.Device)
	assert.True(t, c.Sensor.Live)
	// unset values fall back to defaults
	assert.Equal(t, sensor_config.DefaultBaud, c.Sensor.Baud)
	assert.Equal(t, sensor_config.DefaultWarmupLines, c.Sensor.WarmupLines)
	assert.Equal(t, sensor_config.DefaultMock, c.Sensor.Mock)
	assert.Equal(t, state.DefaultMsgConnStringBad, c.UI.MsgConnStringBad)
	assert.Equal(t, state.DefaultMsgConnStringOk, c.UI.MsgConnStringOk)

	assert.True(t, c.Tele.Enabled)
	assert.Equal(t, "HostName=hub.test;DeviceId=air-01;", c.Tele.ConnectionString)
}

func TestReadConfigInclude(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	fs := state.NewMockFullReader(map[string]string{
		"main": `
include "extra" {}
sensor { mock = "co2" }`,
		"extra": `tele { enable = true }`,
	})
	c, err := state.ReadConfig(log, fs, "main")
	require.NoError(t, err)
	assert.Equal(t, "co2", c.Sensor.Mock)
	assert.True(t, c.Tele.Enabled)
}

func TestReadConfigMissingRequired(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	fs := state.NewMockFullReader(map[string]string{})
	_, err := state.ReadConfig(log, fs, "nosuch")
	require.Error(t, err)
}

func TestNewTestContext(t *testing.T) {
	t.Parallel()

	ctx, g := state_new.NewTestContext(t, "test-build", `sensor { mock = "co2" }`)
	require.NotNil(t, g)
	assert.Equal(t, "test-build", g.BuildVersion)
	assert.Equal(t, "co2", g.Config.Sensor.Mock)
	assert.False(t, g.Config.Sensor.Live)
	assert.True(t, g == state.GetGlobal(ctx))
	assert.True(t, g.Alive.IsRunning())
}
