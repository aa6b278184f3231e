// Package modbus exposes a device's nonvolatile area as a medium over
// Modbus holding registers. Register A carries the byte at address A in
// its low byte.
package modbus

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/wearlevel/internal/medium"
)

const (
	TransportTCP = "tcp"
	TransportRTU = "rtu"
)

// registerClient is the subset of modbus.Client the medium uses.
type registerClient interface {
	ReadHoldingRegisters(address, quantity uint16) ([]byte, error)
	WriteSingleRegister(address, value uint16) ([]byte, error)
}

// Medium is a single connection to one device.
// It serializes requests because each write is a read-compare-write.
type Medium struct {
	mu     sync.Mutex
	closer io.Closer
	client registerClient
	size   int
}

var _ medium.Medium = (*Medium)(nil)

type Config struct {
	Transport string // tcp (default) or rtu
	Endpoint  string // host:port for tcp, serial device for rtu
	UnitID    uint8
	Timeout   time.Duration
	BaudRate  int // rtu only
	Size      int // bytes exposed by the device
}

// New connects to the device described by cfg.
func New(cfg Config) (*Medium, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("medium modbus: endpoint required")
	}
	if cfg.Size <= 0 {
		return nil, errors.New("medium modbus: size must be > 0")
	}

	switch cfg.Transport {
	case "", TransportTCP:
		h := modbus.NewTCPClientHandler(cfg.Endpoint)
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.UnitID
		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("medium modbus: connect %s: %w", cfg.Endpoint, err)
		}
		return newMedium(modbus.NewClient(h), h, cfg.Size), nil

	case TransportRTU:
		h := modbus.NewRTUClientHandler(cfg.Endpoint)
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.UnitID
		h.BaudRate = cfg.BaudRate
		if h.BaudRate == 0 {
			h.BaudRate = 19200
		}
		h.DataBits = 8
		h.Parity = "E"
		h.StopBits = 1
		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("medium modbus: open %s: %w", cfg.Endpoint, err)
		}
		return newMedium(modbus.NewClient(h), h, cfg.Size), nil

	default:
		return nil, fmt.Errorf("medium modbus: unknown transport %q", cfg.Transport)
	}
}

func newMedium(client registerClient, closer io.Closer, size int) *Medium {
	return &Medium{
		closer: closer,
		client: client,
		size:   size,
	}
}

func (m *Medium) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closer == nil {
		return nil
	}
	return m.closer.Close()
}

func (m *Medium) Size() int { return m.size }

func (m *Medium) Read(addr uint16) (byte, error) {
	if int(addr) >= m.size {
		return 0, fmt.Errorf("%w: addr=%d size=%d", medium.ErrOutOfRange, addr, m.size)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.readLocked(addr)
}

// Write stores b at addr unless the register already holds it.
func (m *Medium) Write(addr uint16, b byte) error {
	if int(addr) >= m.size {
		return fmt.Errorf("%w: addr=%d size=%d", medium.ErrOutOfRange, addr, m.size)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cur, err := m.readLocked(addr)
	if err != nil {
		return err
	}
	if cur == b {
		return nil
	}

	if _, err := m.client.WriteSingleRegister(addr, uint16(b)); err != nil {
		return fmt.Errorf("medium modbus: write addr=%d: %w", addr, err)
	}
	return nil
}

func (m *Medium) readLocked(addr uint16) (byte, error) {
	regs, err := m.client.ReadHoldingRegisters(addr, 1)
	if err != nil {
		return 0, fmt.Errorf("medium modbus: read addr=%d: %w", addr, err)
	}
	if len(regs) != 2 {
		return 0, fmt.Errorf("medium modbus: read addr=%d: got %d payload bytes, want 2", addr, len(regs))
	}
	// big-endian register; the byte lives in the low half
	return regs[1], nil
}
