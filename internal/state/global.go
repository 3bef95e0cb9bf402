package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/airberry/airberry/log2"
	tele_api "github.com/airberry/airberry/tele"
	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
)

const ContextKey = "run/state-global"

type Global struct {
	Alive        *alive.Alive
	BuildVersion string
	Config       *Config
	Log          *log2.Log
	Tele         tele_api.Teler

	initOnce sync.Once
}

func GetGlobal(ctx context.Context) *Global {
	v := ctx.Value(ContextKey)
	if v == nil {
		panic(fmt.Sprintf("context['%s'] is nil", ContextKey))
	}
	if g, ok := v.(*Global); ok {
		return g
	}
	panic(fmt.Sprintf("context['%s'] expected type *Global", ContextKey))
}

// Init wires config into the telemetry client. Transport connect
// happens here; call only after the connection string was validated.
func (g *Global) Init(ctx context.Context, config *Config) error {
	g.Config = config
	var err error
	g.initOnce.Do(func() {
		err = g.Tele.Init(ctx, g.Log, config.Tele)
	})
	return errors.Annotate(err, "global init")
}

func (g *Global) MustInit(ctx context.Context, config *Config) {
	if err := g.Init(ctx, config); err != nil {
		g.Log.Fatal(errors.ErrorStack(err))
	}
}

func (g *Global) Stop() {
	g.Alive.Stop()
}
