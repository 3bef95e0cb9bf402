// Separate package is workaround to import cycles.
package sensor_config

type Config struct { //nolint:maligned
	Device      string `hcl:"device"`
	Baud        int    `hcl:"baud"`
	WarmupLines int    `hcl:"warmup_lines"`
	// Live reads the attached sensor; default is simulated data,
	// same as running with argument "true"
	Live bool   `hcl:"live"`
	Mock string `hcl:"mock"` // temp_hum | co2
}

const (
	DefaultDevice      = "/dev/ttyACM0"
	DefaultBaud        = 9600
	DefaultWarmupLines = 15
	DefaultMock        = "temp_hum"
)

func (c *Config) SetDefaults() {
	if c.Device == "" {
		c.Device = DefaultDevice
	}
	if c.Baud == 0 {
		c.Baud = DefaultBaud
	}
	if c.WarmupLines == 0 {
		c.WarmupLines = DefaultWarmupLines
	}
	if c.Mock == "" {
		c.Mock = DefaultMock
	}
}
