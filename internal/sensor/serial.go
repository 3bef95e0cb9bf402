package sensor

import (
	"github.com/airberry/airberry/hardware/serial"
	sensor_config "github.com/airberry/airberry/internal/sensor/config"
	"github.com/airberry/airberry/log2"
	"github.com/juju/errors"
)

// SerialSource reads one CSV line per tick from an attached sensor.
type SerialSource struct {
	log  *log2.Log
	port serial.Porter
	cfg  sensor_config.Config
}

var _ Source = &SerialSource{}

func NewSerialSource(log *log2.Log, port serial.Porter, cfg sensor_config.Config) *SerialSource {
	return &SerialSource{log: log, port: port, cfg: cfg}
}

// Open opens the device once and discards the configured number of
// warm-up lines before any reading reaches the formatter.
// Open and read errors propagate, there is no local recovery.
func (s *SerialSource) Open() error {
	if err := s.port.Open(s.cfg.Device, s.cfg.Baud); err != nil {
		return errors.Annotatef(err, "serial open device=%s", s.cfg.Device)
	}
	for i := 0; i < s.cfg.WarmupLines; i++ {
		s.log.Infof("Reading data from serial port")
		if _, err := s.port.ReadLine(); err != nil {
			return errors.Annotatef(err, "serial warmup line=%d", i)
		}
	}
	return nil
}

func (s *SerialSource) Next() (Record, error) {
	line, err := s.port.ReadLine()
	if err != nil {
		return nil, errors.Annotate(err, "serial read")
	}
	rec, err := FormatLine(line)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return rec, nil
}

func (s *SerialSource) Close() error { return s.port.Close() }
