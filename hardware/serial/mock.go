package serial

// Public API to easy create port stubs to test your code.

import (
	"bufio"
	"bytes"
	"io"

	"github.com/juju/errors"
)

// MockPort replays scripted sensor lines without touching hardware.
type MockPort struct {
	src       io.Reader
	r         *bufio.Reader
	OpenCalls int
	ReadCalls int
	Closed    bool
}

var _ Porter = &MockPort{}

func NewMockPort(r io.Reader) *MockPort {
	return &MockPort{
		src: r,
		r:   bufio.NewReader(r),
	}
}

// NewMockPortLines joins lines with \r\n like a typical sensor prints.
func NewMockPortLines(lines ...string) *MockPort {
	b := bytes.NewBuffer(nil)
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\r\n")
	}
	return NewMockPort(b)
}

func (m *MockPort) Open(path string, baud int) error {
	m.OpenCalls++
	return nil
}

func (m *MockPort) ReadLine() ([]byte, error) {
	m.ReadCalls++
	line, err := m.r.ReadSlice('\n')
	if err != nil {
		return nil, errors.Trace(err)
	}
	return bytes.TrimRight(line, "\r\n"), nil
}

func (m *MockPort) Close() error {
	m.Closed = true
	return nil
}
