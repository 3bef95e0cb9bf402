// Package serial reads line-oriented sensor output from a tty device.
package serial

import (
	"bufio"
	"bytes"
	"os"
	"syscall"
	"time"

	"github.com/juju/errors"
)

const defaultReadTimeout = 5 * time.Second

// Porter is the minimal surface the sensor layer needs from a port.
type Porter interface {
	Open(path string, baud int) error
	ReadLine() ([]byte, error)
	Close() error
}

type filePort struct {
	f      *os.File
	reader fdReader
	r      *bufio.Reader
	t2     termios2
}

var _ Porter = &filePort{}

func NewFilePort() *filePort { return &filePort{} }

func (p *filePort) Open(path string, baud int) (err error) {
	if p.f != nil {
		p.f.Close()
	}
	p.f, err = os.OpenFile(path, syscall.O_RDWR|syscall.O_NOCTTY, 0600)
	if err != nil {
		return errors.Trace(err)
	}
	p.reader = fdReader{fd: p.f.Fd(), timeout: defaultReadTimeout}
	p.r = bufio.NewReader(p.reader)
	err = ioResetTermios(p.f.Fd(), &p.t2, baud)
	if err != nil {
		p.f.Close()
		p.f = nil
		p.r = nil
		return errors.Trace(err)
	}
	return nil
}

// ReadLine blocks for one sensor line, trailing CR/LF stripped.
func (p *filePort) ReadLine() ([]byte, error) {
	line, err := p.r.ReadSlice('\n')
	if err != nil {
		return nil, errors.Trace(err)
	}
	return bytes.TrimRight(line, "\r\n"), nil
}

func (p *filePort) Close() error {
	if p.f == nil {
		return nil
	}
	err := p.f.Close()
	p.f = nil
	p.r = nil
	return err
}
