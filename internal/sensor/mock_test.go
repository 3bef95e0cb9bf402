package sensor

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTempHumShape(t *testing.T) {
	t.Parallel()

	src := NewMockTempHum()
	for i := 0; i < 10; i++ {
		rec, err := src.Next()
		require.NoError(t, err)
		th, ok := rec.(TempHumRecord)
		require.True(t, ok, "rec=%#v", rec)

		temp, err := strconv.ParseFloat(th.Temperature, 64)
		require.NoError(t, err)
		assert.True(t, temp >= 20.0 && temp <= 35.0, "temperature=%s", th.Temperature)
		hum, err := strconv.ParseFloat(th.Humidity, 64)
		require.NoError(t, err)
		assert.True(t, hum >= 60.0 && hum <= 80.0, "humidity=%s", th.Humidity)

		b, err := json.Marshal(rec)
		require.NoError(t, err)
		var m map[string]string
		require.NoError(t, json.Unmarshal(b, &m))
		assert.Len(t, m, 2)
		assert.Contains(t, m, "temperature")
		assert.Contains(t, m, "humidity")
	}
}

func TestMockCO2Shape(t *testing.T) {
	t.Parallel()

	src := NewMockCO2()
	for i := 0; i < 10; i++ {
		rec, err := src.Next()
		require.NoError(t, err)
		co2, ok := rec.(CO2Record)
		require.True(t, ok, "rec=%#v", rec)

		ppm, err := strconv.Atoi(co2.CO2)
		require.NoError(t, err)
		assert.True(t, ppm >= 400 && ppm < 1000, "co2=%s", co2.CO2)
	}
}

func TestNewMockSource(t *testing.T) {
	t.Parallel()

	src, err := NewMockSource("temp_hum")
	require.NoError(t, err)
	rec, err := src.Next()
	require.NoError(t, err)
	assert.IsType(t, TempHumRecord{}, rec)

	src, err = NewMockSource("co2")
	require.NoError(t, err)
	rec, err = src.Next()
	require.NoError(t, err)
	assert.IsType(t, CO2Record{}, rec)

	_, err = NewMockSource("lava-lamp")
	assert.Error(t, err)
}
