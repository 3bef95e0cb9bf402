package tele_config

import (
	"regexp"
	"strings"

	"github.com/juju/errors"
)

// Required shape of the device connection string:
// HostName and DeviceId fields in this order, each non-empty,
// each terminated by a semicolon. Field contents are unconstrained.
var connStringRe = regexp.MustCompile(`HostName=.+;DeviceId=.+;`)

func ValidConnectionString(s string) bool {
	return connStringRe.MatchString(s)
}

// Device identifies one device-to-cloud attachment point parsed out
// of a connection string.
type Device struct {
	HostName string
	DeviceId string
}

// ParseConnectionString extracts HostName and DeviceId.
// Call only after ValidConnectionString; malformed input is an error.
func ParseConnectionString(s string) (Device, error) {
	d := Device{}
	if !ValidConnectionString(s) {
		return d, errors.NotValidf("connection string")
	}
	for _, part := range strings.Split(s, ";") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "HostName":
			d.HostName = kv[1]
		case "DeviceId":
			d.DeviceId = kv[1]
		}
	}
	if d.HostName == "" || d.DeviceId == "" {
		return Device{}, errors.NotValidf("connection string")
	}
	return d, nil
}

// BrokerURL returns the MQTT endpoint for the device hub.
func (d Device) BrokerURL(override string) string {
	if override != "" {
		return override
	}
	return "tls://" + d.HostName + ":8883"
}

// EventTopic is the device-to-cloud message topic.
func (d Device) EventTopic() string {
	return "devices/" + d.DeviceId + "/messages/events/"
}
