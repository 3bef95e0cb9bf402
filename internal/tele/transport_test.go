package tele

import (
	"context"
	"testing"
	"time"

	"github.com/256dpi/gomqtt/packet"
	"github.com/airberry/airberry/log2"
	tele_config "github.com/airberry/airberry/tele/config"
	"github.com/airberry/airberry/tele/mqtt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paho keeps package level loggers, so no t.Parallel() here.
func TestTransportMqttPublish(t *testing.T) {
	log := log2.NewTest(t, log2.LDebug)
	ts, err := mqtt.NewTestServer(log)
	require.NoError(t, err)
	defer ts.Close()

	cfg := tele_config.Config{
		Enabled:           true,
		ConnectionString:  "HostName=hub.test;DeviceId=air-01;",
		MqttBroker:        ts.URL(),
		KeepaliveSec:      10,
		NetworkTimeoutSec: 5,
	}
	device, err := tele_config.ParseConnectionString(cfg.ConnectionString)
	require.NoError(t, err)

	tr := &transportMqtt{}
	require.NoError(t, tr.Init(context.Background(), log, cfg, device))
	defer tr.Close()

	select {
	case pktConnect := <-ts.ConnectCh:
		assert.Equal(t, "air-01", pktConnect.ClientID)
		assert.Equal(t, "hub.test/air-01/?api-version=2018-06-30", pktConnect.Username)
	case <-time.After(5 * time.Second):
		t.Fatal("device did not connect")
	}

	payload := []byte(`{"gas":"50000","co2":"412","tvoc":"7"}`)
	require.True(t, tr.SendTelemetry(payload, "$.ct=application%2Fjson&$.ce=utf-8"))

	select {
	case msg := <-ts.MsgCh:
		assert.Equal(t, "devices/air-01/messages/events/$.ct=application%2Fjson&$.ce=utf-8", msg.Topic)
		assert.Equal(t, payload, msg.Payload)
		assert.Equal(t, packet.QOS(1), msg.QOS)
	case <-time.After(5 * time.Second):
		t.Fatal("telemetry message did not arrive")
	}
}
