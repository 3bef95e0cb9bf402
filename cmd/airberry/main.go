// airberry reads air quality readings from a serial sensor (or a
// synthetic generator) and forwards them to the device hub every two
// seconds, one JSON message per tick.
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"strings"

	"github.com/airberry/airberry/hardware/serial"
	"github.com/airberry/airberry/helpers/cli"
	"github.com/airberry/airberry/internal/sensor"
	"github.com/airberry/airberry/internal/state"
	state_new "github.com/airberry/airberry/internal/state/new"
	tele "github.com/airberry/airberry/internal/tele"
	"github.com/airberry/airberry/internal/telemetry"
	"github.com/airberry/airberry/log2"
	tele_api "github.com/airberry/airberry/tele"
	tele_config "github.com/airberry/airberry/tele/config"
	"github.com/coreos/go-systemd/daemon"
	"github.com/juju/errors"
)

const EnvConnectionString = "IOTHUB_DEVICE_CONNECTION_STRING"

var BuildVersion string = "unknown" // set by ldflags -X

func main() {
	flagConfig := flag.String("config", "airberry.hcl", "")
	flag.Parse()

	log := log2.NewStderr(log2.LInfo)
	if sdnotify("start") {
		// under systemd, journal adds timestamps
		log.SetFlags(log2.LServiceFlags)
	} else {
		log.SetFlags(log2.LInteractiveFlags)
	}
	log.Infof("airberry %s", BuildVersion)

	config := state.MustReadConfigFile(log, *flagConfig)
	if cs := os.Getenv(EnvConnectionString); cs != "" {
		config.Tele.ConnectionString = cs
	}

	// pre-flight check before any network activity;
	// exit code 0 on failure is deliberate, see DESIGN.md
	if !tele_config.ValidConnectionString(config.Tele.ConnectionString) {
		fmt.Println(config.UI.MsgConnStringBad)
		os.Exit(0)
	}
	fmt.Println(config.UI.MsgConnStringOk)

	// optional positional argument toggles simulated data,
	// passed explicitly down the stack, no process-wide flag
	simulate := !config.Sensor.Live
	if args := flag.Args(); len(args) > 0 {
		simulate = strings.EqualFold(args[0], "true")
	}
	log.Infof("simulate=%t argv=%v", simulate, os.Args)

	var src sensor.Source
	if simulate {
		var err error
		if src, err = sensor.NewMockSource(config.Sensor.Mock); err != nil {
			log.Fatal(errors.ErrorStack(err))
		}
	} else {
		src = sensor.NewSerialSource(log, serial.NewFilePort(), config.Sensor)
	}

	ctx, g := state_new.NewContext(log, tele.New())
	g.BuildVersion = BuildVersion

	log.Infof("recurring telemetry, interval=%s", telemetry.MessageTimespan)
	log.Infof("Press Ctrl+C to exit")
	sdnotify(daemon.SdNotifyReady)

	// single generic failure path: serial, format and send errors are
	// not distinguished, print and stop
	if err := run(ctx, g, config, src); err != nil {
		log.Errorf("unexpected error %s", errors.ErrorStack(err))
		g.Tele.Close()
		log.Infof("shutting down device client")
		return
	}

	// only reachable after the loop was stopped from outside
	if cli.AskQuit() {
		g.Tele.State(tele_api.State_Shutdown)
		g.Tele.Close()
		log.Infof("Quitting...")
	}
}

func run(ctx context.Context, g *state.Global, config *state.Config, src sensor.Source) error {
	if err := g.Init(ctx, config); err != nil {
		return errors.Trace(err)
	}
	defer src.Close()
	loop := telemetry.NewLoop(g.Log, g.Alive, src, g.Tele, 0)
	return loop.Run(ctx)
}

func sdnotify(s string) bool {
	ok, err := daemon.SdNotify(false, s)
	if err != nil {
		stdlog.Fatal("sdnotify: ", errors.ErrorStack(err))
	}
	return ok
}
