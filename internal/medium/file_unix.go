//go:build unix

package medium

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/tamzrod/wearlevel/internal/layout"
)

// File is a medium backed by a memory-mapped image file.
// A new image is created erased to 0xFF.
type File struct {
	f    *os.File
	data []byte
}

var _ Medium = (*File)(nil)

// OpenFile maps the image at path, creating it with size bytes if missing.
// An existing image must already be exactly size bytes.
func OpenFile(path string, size int) (*File, error) {
	if size <= 0 || size > layout.AddressSpace {
		return nil, fmt.Errorf("medium: image size %d out of range", size)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("medium: open image: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("medium: stat image: %w", err)
	}

	fresh := info.Size() == 0
	switch {
	case fresh:
		if err := f.Truncate(int64(size)); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("medium: size image: %w", err)
		}
	case info.Size() != int64(size):
		_ = f.Close()
		return nil, fmt.Errorf("medium: image %s is %d bytes, want %d", path, info.Size(), size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("medium: mmap image: %w", err)
	}

	if fresh {
		for i := range data {
			data[i] = layout.ErasedByte
		}
	}

	return &File{f: f, data: data}, nil
}

func (m *File) Read(addr uint16) (byte, error) {
	if m.data == nil {
		return 0, ErrClosed
	}
	if err := checkRange(addr, len(m.data)); err != nil {
		return 0, err
	}
	return m.data[addr], nil
}

func (m *File) Write(addr uint16, b byte) error {
	if m.data == nil {
		return ErrClosed
	}
	if err := checkRange(addr, len(m.data)); err != nil {
		return err
	}
	if m.data[addr] != b {
		m.data[addr] = b
	}
	return nil
}

func (m *File) Size() int { return len(m.data) }

// Sync flushes dirty pages to the image file.
func (m *File) Sync() error {
	if m.data == nil {
		return ErrClosed
	}
	if err := unix.Msync(m.data, unix.MS_SYNC); err != nil {
		return fmt.Errorf("medium: msync image: %w", err)
	}
	return nil
}

// Close syncs, unmaps and closes the image.
func (m *File) Close() error {
	if m == nil || m.data == nil {
		return nil
	}

	var last error
	if err := m.Sync(); err != nil {
		last = err
	}
	if err := unix.Munmap(m.data); err != nil {
		last = fmt.Errorf("medium: munmap image: %w", err)
	}
	m.data = nil
	if err := m.f.Close(); err != nil {
		last = err
	}
	return last
}
