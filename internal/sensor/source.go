package sensor

import (
	sensor_config "github.com/airberry/airberry/internal/sensor/config"
	"github.com/juju/errors"
)

// Source produces one record per tick.
type Source interface {
	Next() (Record, error)
	Close() error
}

// NewMockSource picks the synthetic generator variant by config.
func NewMockSource(kind string) (Source, error) {
	switch kind {
	case "", sensor_config.DefaultMock:
		return NewMockTempHum(), nil
	case "co2":
		return NewMockCO2(), nil
	}
	return nil, errors.NotValidf("sensor mock=%s", kind)
}
