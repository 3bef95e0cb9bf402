package tele

import (
	"context"
	"fmt"
	"time"

	"github.com/airberry/airberry/helpers"
	"github.com/airberry/airberry/log2"
	tele_config "github.com/airberry/airberry/tele/config"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	DefaultKeepalive      = 60 * time.Second
	DefaultNetworkTimeout = 30 * time.Second

	hubApiVersion = "2018-06-30"
)

type transportMqtt struct {
	log            *log2.Log
	m              mqtt.Client
	mopt           *mqtt.ClientOptions
	device         tele_config.Device
	topicEvents    string
	networkTimeout time.Duration
}

func (t *transportMqtt) Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config, device tele_config.Device) error {
	t.log = log
	mqtt.ERROR = log
	mqtt.CRITICAL = log
	mqtt.WARN = log
	if teleConfig.MqttLogDebug {
		mqtt.DEBUG = log
	}

	t.device = device
	t.topicEvents = device.EventTopic()
	t.networkTimeout = helpers.IntSecondDefault(teleConfig.NetworkTimeoutSec, DefaultNetworkTimeout)

	keepAlive := helpers.IntSecondDefault(teleConfig.KeepaliveSec, DefaultKeepalive)
	pingTimeout := helpers.IntSecondDefault(teleConfig.PingTimeoutSec, DefaultKeepalive/2)
	username := fmt.Sprintf("%s/%s/?api-version=%s", device.HostName, device.DeviceId, hubApiVersion)

	t.mopt = mqtt.NewClientOptions().
		AddBroker(device.BrokerURL(teleConfig.MqttBroker)).
		SetClientID(device.DeviceId).
		SetUsername(username).
		SetCleanSession(false).
		SetKeepAlive(keepAlive).
		SetPingTimeout(pingTimeout).
		SetOrderMatters(false).
		SetConnectRetry(true).
		SetConnectRetryInterval(keepAlive / 2).
		SetOnConnectHandler(t.onConnectHandler).
		SetConnectionLostHandler(t.connectLostHandler)
	t.m = mqtt.NewClient(t.mopt)
	token := t.m.Connect()
	if !token.WaitTimeout(t.networkTimeout) {
		t.log.Errorf("mqtt connect timeout broker=%s", device.BrokerURL(teleConfig.MqttBroker))
	}
	if err := token.Error(); err != nil {
		t.log.Errorf("mqtt connect err=%v", err)
	}
	return nil
}

func (t *transportMqtt) SendTelemetry(payload []byte, props string) bool {
	topic := t.topicEvents
	if props != "" {
		topic += props
	}
	token := t.m.Publish(topic, 1, false, payload)
	if !token.WaitTimeout(t.networkTimeout) {
		t.log.Errorf("mqtt publish timeout topic=%s", topic)
		return false
	}
	if err := token.Error(); err != nil {
		t.log.Errorf("mqtt publish topic=%s err=%v", topic, err)
		return false
	}
	return true
}

func (t *transportMqtt) Close() {
	if t.m != nil {
		t.m.Disconnect(uint(250))
	}
}

func (t *transportMqtt) connectLostHandler(c mqtt.Client, err error) {
	t.log.Infof("mqtt disconnect err=%v", err)
}

func (t *transportMqtt) onConnectHandler(c mqtt.Client) {
	t.log.Infof("mqtt connect device=%s", t.device.DeviceId)
}
