package sensor

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Synthetic generators for operation without attached hardware.
// Ready-made record per call, no I/O.

type mockTempHum struct{}

var _ Source = mockTempHum{}

func NewMockTempHum() Source { return mockTempHum{} }

func (mockTempHum) Next() (Record, error) {
	return TempHumRecord{
		Temperature: fmt.Sprintf("%.2f", 20.0+rand.Float64()*15),
		Humidity:    fmt.Sprintf("%.2f", 60.0+rand.Float64()*20),
	}, nil
}

func (mockTempHum) Close() error { return nil }

type mockCO2 struct{}

var _ Source = mockCO2{}

func NewMockCO2() Source { return mockCO2{} }

func (mockCO2) Next() (Record, error) {
	return CO2Record{
		CO2: strconv.Itoa(400 + rand.Intn(600)),
	}, nil
}

func (mockCO2) Close() error { return nil }
