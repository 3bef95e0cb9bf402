package tele

import (
	"context"

	"github.com/airberry/airberry/log2"
	tele_config "github.com/airberry/airberry/tele/config"
)

// Teler is the device side telemetry client.
// Contract:
// - Init fails only with invalid config; network errors are the
//   transport's business and surface through SendTelemetry=false
// - SendTelemetry blocks for at most the configured network timeout
// - Close is best-effort, safe to call after a failed Init
type Teler interface {
	Init(context.Context, *log2.Log, tele_config.Config) error
	Close()
	State(State)
	SendTelemetry(*Envelope) bool
}

type stub struct{}

var _ Teler = stub{} // compile-time interface test

func (stub) Init(context.Context, *log2.Log, tele_config.Config) error { return nil }
func (stub) Close()                                                    {}
func (stub) State(State)                                               {}
func (stub) SendTelemetry(*Envelope) bool                              { return true }

func NewStub() Teler { return stub{} }
