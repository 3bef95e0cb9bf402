package sensor

import (
	"fmt"
	"testing"

	"github.com/airberry/airberry/hardware/serial"
	sensor_config "github.com/airberry/airberry/internal/sensor/config"
	"github.com/airberry/airberry/log2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSensorConfig() sensor_config.Config {
	c := sensor_config.Config{}
	c.SetDefaults()
	return c
}

func TestSerialSourceWarmup(t *testing.T) {
	t.Parallel()

	// 15 warm-up lines are discarded, the 16th reaches the formatter
	lines := make([]string, 0, 16)
	for i := 0; i < 15; i++ {
		lines = append(lines, fmt.Sprintf("warmup%d,0,0", i))
	}
	lines = append(lines, "51234,417,9")
	port := serial.NewMockPortLines(lines...)

	src := NewSerialSource(log2.NewTest(t, log2.LDebug), port, testSensorConfig())
	require.NoError(t, src.Open())
	assert.Equal(t, 1, port.OpenCalls)
	assert.Equal(t, 15, port.ReadCalls)

	rec, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, AirRecord{Gas: "51234", CO2: "417", TVOC: "9"}, rec)
	assert.Equal(t, 16, port.ReadCalls)

	require.NoError(t, src.Close())
	assert.True(t, port.Closed)
}

func TestSerialSourceShortLine(t *testing.T) {
	t.Parallel()

	cfg := testSensorConfig()
	cfg.WarmupLines = 0
	port := serial.NewMockPortLines("only,two")

	src := NewSerialSource(log2.NewTest(t, log2.LDebug), port, cfg)
	require.NoError(t, src.Open())
	_, err := src.Next()
	require.Error(t, err)
}

func TestSerialSourceReadError(t *testing.T) {
	t.Parallel()

	cfg := testSensorConfig()
	cfg.WarmupLines = 2
	// only one line available, warm-up read fails and propagates
	port := serial.NewMockPortLines("1,2,3")

	src := NewSerialSource(log2.NewTest(t, log2.LDebug), port, cfg)
	require.Error(t, src.Open())
}
