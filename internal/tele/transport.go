package tele

import (
	"context"

	"github.com/airberry/airberry/log2"
	tele_config "github.com/airberry/airberry/tele/config"
)

// Transport contract:
// - Init fails only with invalid config, ignores network errors
// - SendTelemetry delivers within the network timeout or returns false
// - hide "connection" concept from upstream API
// - application may start without network available
type Transporter interface {
	Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config, device tele_config.Device) error
	SendTelemetry(payload []byte, props string) bool
	Close()
}
