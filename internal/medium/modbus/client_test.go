package modbus

import (
	"errors"
	"testing"

	"github.com/tamzrod/wearlevel/internal/medium"
)

// ---- fake register client ----

type fakeRegisters struct {
	regs   []uint16
	writes []writeCall
	failRd bool
}

type writeCall struct {
	addr  uint16
	value uint16
}

func newFakeRegisters(n int) *fakeRegisters {
	regs := make([]uint16, n)
	for i := range regs {
		regs[i] = 0x00FF
	}
	return &fakeRegisters{regs: regs}
}

func (f *fakeRegisters) ReadHoldingRegisters(address, quantity uint16) ([]byte, error) {
	if f.failRd {
		return nil, errors.New("fail read")
	}
	out := make([]byte, 0, 2*quantity)
	for i := uint16(0); i < quantity; i++ {
		r := f.regs[address+i]
		out = append(out, byte(r>>8), byte(r))
	}
	return out, nil
}

func (f *fakeRegisters) WriteSingleRegister(address, value uint16) ([]byte, error) {
	f.regs[address] = value
	f.writes = append(f.writes, writeCall{addr: address, value: value})
	return []byte{byte(value >> 8), byte(value)}, nil
}

// ---- tests ----

func TestMedium_ByteInLowHalf(t *testing.T) {
	fake := newFakeRegisters(16)
	fake.regs[3] = 0xAB40

	m := newMedium(fake, nil, 16)

	b, err := m.Read(3)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if b != 0x40 {
		t.Fatalf("read: got=%#x want=0x40", b)
	}
}

func TestMedium_WriteIsUpdateOnly(t *testing.T) {
	fake := newFakeRegisters(16)
	m := newMedium(fake, nil, 16)

	if err := m.Write(5, 0x41); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(fake.writes) != 1 {
		t.Fatalf("expected 1 register write, got %d", len(fake.writes))
	}
	if fake.writes[0].addr != 5 || fake.writes[0].value != 0x0041 {
		t.Fatalf("unexpected write: %+v", fake.writes[0])
	}

	// same value again: no register traffic beyond the read
	if err := m.Write(5, 0x41); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(fake.writes) != 1 {
		t.Fatalf("same-value write should be skipped, got %d writes", len(fake.writes))
	}
}

func TestMedium_OutOfRange(t *testing.T) {
	m := newMedium(newFakeRegisters(16), nil, 16)

	if _, err := m.Read(16); !errors.Is(err, medium.ErrOutOfRange) {
		t.Fatalf("read: expected ErrOutOfRange, got %v", err)
	}
	if err := m.Write(16, 0); !errors.Is(err, medium.ErrOutOfRange) {
		t.Fatalf("write: expected ErrOutOfRange, got %v", err)
	}
}

func TestMedium_ReadErrorWrapped(t *testing.T) {
	fake := newFakeRegisters(16)
	fake.failRd = true
	m := newMedium(fake, nil, 16)

	if _, err := m.Read(0); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if err := m.Write(0, 1); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if len(fake.writes) != 0 {
		t.Fatalf("write must not be issued after failed read")
	}
}

func TestNew_ConfigErrors(t *testing.T) {
	if _, err := New(Config{Size: 16}); err == nil {
		t.Fatalf("expected endpoint error, got nil")
	}
	if _, err := New(Config{Endpoint: "127.0.0.1:502"}); err == nil {
		t.Fatalf("expected size error, got nil")
	}
	if _, err := New(Config{Endpoint: "x", Size: 16, Transport: "udp"}); err == nil {
		t.Fatalf("expected transport error, got nil")
	}
}
