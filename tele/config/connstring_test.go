package tele_config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidConnectionString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		expect bool
	}{
		{"full", "HostName=hub.example.net;DeviceId=air-01;", true},
		{"extra-fields", "HostName=hub;SharedAccessKey=zzz;DeviceId=d;", true},
		{"missing-tail-semicolon", "HostName=hub;DeviceId=d", false},
		{"missing-deviceid", "HostName=hub;", false},
		{"missing-hostname", "DeviceId=d;", false},
		{"empty-hostname", "HostName=;DeviceId=d;", false},
		{"empty-deviceid", "HostName=hub;DeviceId=;", false},
		{"wrong-order", "DeviceId=d;HostName=hub;", false},
		{"garbage", "Foo=1", false},
		{"empty", "", false},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expect, ValidConnectionString(c.input))
		})
	}
}

func TestParseConnectionString(t *testing.T) {
	t.Parallel()

	d, err := ParseConnectionString("HostName=hub.example.net;DeviceId=air-01;")
	require.NoError(t, err)
	assert.Equal(t, "hub.example.net", d.HostName)
	assert.Equal(t, "air-01", d.DeviceId)
	assert.Equal(t, "tls://hub.example.net:8883", d.BrokerURL(""))
	assert.Equal(t, "tcp://127.0.0.1:1883", d.BrokerURL("tcp://127.0.0.1:1883"))
	assert.Equal(t, "devices/air-01/messages/events/", d.EventTopic())

	_, err = ParseConnectionString("Foo=1")
	assert.Error(t, err)
}
