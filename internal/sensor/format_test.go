package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		expect AirRecord
		err    bool
	}{
		{"happy", "a,b,c", AirRecord{Gas: "a", CO2: "b", TVOC: "c"}, false},
		{"numeric", "50000,412,7", AirRecord{Gas: "50000", CO2: "412", TVOC: "7"}, false},
		{"extra-fields", "1,2,3,4", AirRecord{Gas: "1", CO2: "2", TVOC: "3"}, false},
		{"empty-fields", ",,", AirRecord{}, false},
		{"two-fields", "a,b", AirRecord{}, true},
		{"one-field", "a", AirRecord{}, true},
		{"empty", "", AirRecord{}, true},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			rec, err := FormatLine([]byte(c.input))
			if c.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expect, rec)
		})
	}
}
