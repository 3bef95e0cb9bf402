// Package sensor produces one telemetry record per tick, from a live
// serial device or from a synthetic generator.
package sensor

// Record is one telemetry reading, marshaled to JSON by the sender.
// Live and mock shapes are deliberately separate types; upstream does
// not define a unifying schema and neither do we.
type Record interface{}

// AirRecord is the live sensor shape: three positional CSV fields.
// Values stay text, no numeric coercion.
type AirRecord struct {
	Gas  string `json:"gas"`
	CO2  string `json:"co2"`
	TVOC string `json:"tvoc"`
}

type TempHumRecord struct {
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
}

type CO2Record struct {
	CO2 string `json:"co2"`
}
