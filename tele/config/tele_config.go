// Separate package is workaround to import cycles.
package tele_config

type Config struct { //nolint:maligned
	Enabled           bool   `hcl:"enable"`
	ConnectionString  string `hcl:"connection_string"` // secret
	LogDebug          bool   `hcl:"log_debug"`
	KeepaliveSec      int    `hcl:"keepalive_sec"`
	MqttBroker        string `hcl:"mqtt_broker"` // override derived tls://HostName:8883
	MqttLogDebug      bool   `hcl:"mqtt_log_debug"`
	NetworkTimeoutSec int    `hcl:"network_timeout_sec"`
	PingTimeoutSec    int    `hcl:"ping_timeout_sec"`
}
