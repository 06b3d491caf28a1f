package sink

import (
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"

	"github.com/ironsheep/label-reader/internal/log"
)

// Serial configuration defaults. The attached microcontroller listens on a
// fixed USB-serial adapter at 115200 baud.
const (
	DefaultSerialPort = "/dev/ttyUSB0"
	DefaultBaudRate   = 115200

	// serialSettleDelay gives the microcontroller time to come back up
	// after the reset that opening the port triggers on most boards.
	serialSettleDelay = 2 * time.Second
)

// Serial delivers words to a serial-attached device as newline-terminated
// lowercase ASCII. The protocol is fire-and-forget: nothing is read back.
type Serial struct {
	port      io.WriteCloser
	available bool
}

// NewSerial opens the serial link to the downstream device.
//
// An open failure does not abort the program: the available ports are
// enumerated for operator diagnosis, a warning is logged, and the returned
// sink reports itself unavailable for the whole session. A delivery failure
// later in the session also marks the sink unavailable for the remainder of
// the run; a closed serial link on this hardware does not come back without
// re-plugging.
func NewSerial(portName string, baudRate int) *Serial {
	mode := &serial.Mode{BaudRate: baudRate}
	port, err := serial.Open(portName, mode)
	if err != nil {
		log.Warn("could not open serial port, serial delivery disabled",
			"port", portName, "error", err)
		if ports, listErr := serial.GetPortsList(); listErr == nil {
			log.Warn("available serial ports", "ports", ports)
		}
		return &Serial{}
	}

	time.Sleep(serialSettleDelay)
	log.Info("serial device connected", "port", portName, "baud", baudRate)
	return &Serial{port: port, available: true}
}

// newSerialWithPort wires a Serial to an arbitrary transport. Used by tests.
func newSerialWithPort(port io.WriteCloser) *Serial {
	return &Serial{port: port, available: true}
}

// Name implements Sink.
func (s *Serial) Name() string { return "serial" }

// Available implements Sink.
func (s *Serial) Available() bool { return s.available }

// Deliver writes the word followed by a newline. A write error marks the
// sink unavailable for the rest of the session.
func (s *Serial) Deliver(word string) error {
	if _, err := s.port.Write([]byte(word + "\n")); err != nil {
		s.available = false
		return fmt.Errorf("serial write: %w", err)
	}
	return nil
}

// Close releases the port if it was opened.
func (s *Serial) Close() error {
	if s.port == nil {
		return nil
	}
	s.available = false
	return s.port.Close()
}
