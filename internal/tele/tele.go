package tele

import (
	"context"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/airberry/airberry/log2"
	tele_api "github.com/airberry/airberry/tele"
	tele_config "github.com/airberry/airberry/tele/config"
	"github.com/juju/errors"
	"github.com/temoto/atomic_clock"
)

const logMsgDisabled = "tele disabled"

// Tele contract:
// - Init fails only with invalid config, network issues are ignored
// - SendTelemetry blocks at most for the transport network timeout
// - Close is best-effort and safe after failed Init
type tele struct { //nolint:maligned
	config       tele_config.Config
	log          *log2.Log
	transport    Transporter
	device       tele_config.Device
	currentState tele_api.State
	stat         Stat
}

// Stat counts delivery attempts. Cheap enough to keep always on.
type Stat struct {
	sent       uint32 // atomic
	failed     uint32 // atomic
	lastSendAt atomic_clock.Clock
}

func (s *Stat) Sent() uint32   { return atomic.LoadUint32(&s.sent) }
func (s *Stat) Failed() uint32 { return atomic.LoadUint32(&s.failed) }
func (s *Stat) SinceLastSend() time.Duration {
	return atomic_clock.Since(&s.lastSendAt)
}

func New() tele_api.Teler { return &tele{} }

// NewWithTransporter is the test seam: inject transport, assert sends.
func NewWithTransporter(trans Transporter) tele_api.Teler {
	return &tele{transport: trans}
}

func (t *tele) Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config) error {
	t.config = teleConfig
	t.log = log
	if t.config.LogDebug {
		t.log.SetLevel(log2.LDebug)
	}
	if !t.config.Enabled {
		t.log.Infof(logMsgDisabled)
		return nil
	}

	device, err := tele_config.ParseConnectionString(t.config.ConnectionString)
	if err != nil {
		return errors.Annotate(err, "tele config")
	}
	t.device = device

	// test code sets .transport
	if t.transport == nil { // production path
		t.transport = &transportMqtt{}
	}
	if err := t.transport.Init(ctx, log, teleConfig, device); err != nil {
		return errors.Annotate(err, "tele transport")
	}
	return nil
}

func (t *tele) Close() {
	if t.transport != nil {
		t.transport.Close()
	}
}

func (t *tele) State(s tele_api.State) {
	if t.currentState != s {
		t.log.Infof("tele state %s -> %s", t.currentState.String(), s.String())
		t.currentState = s
	}
}

func (t *tele) SendTelemetry(env *tele_api.Envelope) bool {
	if !t.config.Enabled {
		t.log.Infof(logMsgDisabled)
		return true
	}
	ok := t.transport.SendTelemetry(env.Payload, PropertyBag(env))
	if ok {
		atomic.AddUint32(&t.stat.sent, 1)
		t.stat.lastSendAt.SetNow()
	} else {
		atomic.AddUint32(&t.stat.failed, 1)
	}
	return ok
}

func (t *tele) Stat() *Stat { return &t.stat }

// PropertyBag encodes envelope metadata the way the hub expects it
// appended to the event topic.
func PropertyBag(env *tele_api.Envelope) string {
	parts := make([]string, 0, 2)
	if env.ContentType != "" {
		parts = append(parts, "$.ct="+url.QueryEscape(env.ContentType))
	}
	if env.ContentEncoding != "" {
		parts = append(parts, "$.ce="+url.QueryEscape(env.ContentEncoding))
	}
	return strings.Join(parts, "&")
}
