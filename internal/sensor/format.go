package sensor

import (
	"strings"

	"github.com/juju/errors"
)

// FormatLine maps one comma-separated sensor line into an AirRecord.
// First three fields in order: gas, co2, tvoc. Fewer than three fields
// is an error, never padded.
func FormatLine(line []byte) (AirRecord, error) {
	parts := strings.Split(string(line), ",")
	if len(parts) < 3 {
		return AirRecord{}, errors.Errorf("sensor line=%q expected 3 comma separated fields", line)
	}
	return AirRecord{
		Gas:  parts[0],
		CO2:  parts[1],
		TVOC: parts[2],
	}, nil
}
