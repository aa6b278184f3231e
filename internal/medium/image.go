package medium

import (
	"errors"
	"fmt"

	"golang.org/x/exp/mmap"

	"github.com/tamzrod/wearlevel/internal/layout"
)

// ErrReadOnly is returned by writes to an Image.
var ErrReadOnly = errors.New("medium: read-only image")

// Image is a read-only view of an image file, used for inspection.
type Image struct {
	r *mmap.ReaderAt
}

var _ Medium = (*Image)(nil)

// OpenImage maps the image at path read-only.
func OpenImage(path string) (*Image, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("medium: open image: %w", err)
	}
	if r.Len() > layout.AddressSpace {
		_ = r.Close()
		return nil, fmt.Errorf("medium: image %s is %d bytes, exceeds 16-bit address space", path, r.Len())
	}
	return &Image{r: r}, nil
}

func (m *Image) Read(addr uint16) (byte, error) {
	if err := checkRange(addr, m.r.Len()); err != nil {
		return 0, err
	}
	return m.r.At(int(addr)), nil
}

func (m *Image) Write(addr uint16, b byte) error {
	return fmt.Errorf("%w: addr=%d", ErrReadOnly, addr)
}

func (m *Image) Size() int { return m.r.Len() }

func (m *Image) Close() error { return m.r.Close() }
