// Package telemetry drives the send-then-sleep cycle: one record per
// tick from the sensor source, wrapped and handed to the cloud client.
package telemetry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/airberry/airberry/internal/sensor"
	"github.com/airberry/airberry/log2"
	tele_api "github.com/airberry/airberry/tele"
	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
)

// MessageTimespan is the fixed pause between ticks.
const MessageTimespan = 2000 * time.Millisecond

type opener interface {
	Open() error
}

// Loop is a two state machine: Connecting (initial), then Streaming
// until stopped from outside or a fault bubbles out of any step.
type Loop struct {
	alive    *alive.Alive
	log      *log2.Log
	source   sensor.Source
	tele     tele_api.Teler
	interval time.Duration
}

func NewLoop(log *log2.Log, a *alive.Alive, src sensor.Source, teler tele_api.Teler, interval time.Duration) *Loop {
	if interval == 0 {
		interval = MessageTimespan
	}
	return &Loop{
		alive:    a,
		log:      log,
		source:   src,
		tele:     teler,
		interval: interval,
	}
}

// Run blocks until the alive token is stopped or any step fails.
// There is no retry and no partial recovery: the caller owns the
// single generic failure path.
func (l *Loop) Run(ctx context.Context) error {
	l.tele.State(tele_api.State_Connecting)
	if o, ok := l.source.(opener); ok {
		if err := o.Open(); err != nil {
			return errors.Trace(err)
		}
	}
	l.tele.State(tele_api.State_Streaming)

	for l.alive.IsRunning() {
		rec, err := l.source.Next()
		if err != nil {
			return errors.Trace(err)
		}
		payload, err := json.Marshal(rec)
		if err != nil {
			return errors.Trace(err)
		}
		// every record is printed before the send attempt
		l.log.Infof("%s", payload)
		if !l.tele.SendTelemetry(tele_api.NewEnvelope(payload)) {
			return errors.Errorf("telemetry send failed")
		}
		select {
		case <-l.alive.StopChan():
		case <-time.After(l.interval):
		}
	}
	return nil
}
