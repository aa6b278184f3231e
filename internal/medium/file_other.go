//go:build !unix

package medium

// File is unavailable on this platform.
type File struct{}

var _ Medium = (*File)(nil)

// OpenFile always fails with ErrUnsupported outside unix.
func OpenFile(path string, size int) (*File, error) {
	return nil, ErrUnsupported
}

func (m *File) Read(addr uint16) (byte, error) { return 0, ErrUnsupported }
func (m *File) Write(addr uint16, b byte) error { return ErrUnsupported }
func (m *File) Size() int                       { return 0 }
func (m *File) Sync() error                     { return ErrUnsupported }
func (m *File) Close() error                    { return nil }
