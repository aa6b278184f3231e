// Package store binds a validated layout configuration to a medium and
// exposes its parameters by name.
package store

import (
	"errors"
	"fmt"
	"io"

	"github.com/tamzrod/wearlevel/internal/config"
	"github.com/tamzrod/wearlevel/internal/layout"
	"github.com/tamzrod/wearlevel/internal/medium"
	"github.com/tamzrod/wearlevel/internal/wearlevel"
)

// ErrUnknownParameter is returned for a name the layout does not define.
var ErrUnknownParameter = errors.New("store: unknown parameter")

// Parameter is one named, placed value.
type Parameter struct {
	Name    string
	Block   layout.Block
	Initial []byte // nil when the layout gives none
}

// Store serves named parameters from one medium.
// Like the wear-leveler below it, it is not safe for concurrent use.
type Store struct {
	m       medium.Medium
	params  []Parameter
	byName  map[string]int
	usedEnd int
}

// New binds cfg to m. cfg must have passed Validate and Normalize.
func New(m medium.Medium, cfg *config.Config) (*Store, error) {
	g := cfg.Layout.Geometry()

	s := &Store{
		m:       m,
		byName:  make(map[string]int, len(cfg.Parameters)),
		usedEnd: config.UsedEnd(cfg),
	}

	if m.Size() < s.usedEnd {
		return nil, fmt.Errorf("store: medium has %d bytes, layout needs %d", m.Size(), s.usedEnd)
	}

	for _, p := range cfg.Parameters {
		if p.Address == nil {
			return nil, fmt.Errorf("store: parameter %q has no address (config not normalized)", p.Name)
		}

		var initial []byte
		if len(p.Initial) > 0 {
			initial = make([]byte, len(p.Initial))
			for i, v := range p.Initial {
				initial[i] = byte(v)
			}
		}

		s.byName[p.Name] = len(s.params)
		s.params = append(s.params, Parameter{
			Name:    p.Name,
			Block:   g.Block(*p.Address, p.Length),
			Initial: initial,
		})
	}

	return s, nil
}

// Medium returns the underlying medium.
func (s *Store) Medium() medium.Medium { return s.m }

// Parameters returns the parameters in layout order.
func (s *Store) Parameters() []Parameter {
	out := make([]Parameter, len(s.params))
	copy(out, s.params)
	return out
}

// Parameter looks up one parameter by name.
func (s *Store) Parameter(name string) (Parameter, error) {
	i, ok := s.byName[name]
	if !ok {
		return Parameter{}, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	return s.params[i], nil
}

// Init provisions a parameter. A nil value falls back to the layout's
// initial value, then to zeros. Init resets the parameter's history.
func (s *Store) Init(name string, value []byte) error {
	p, err := s.Parameter(name)
	if err != nil {
		return err
	}

	if value == nil {
		value = p.Initial
	}
	if value == nil {
		value = make([]byte, p.Block.Length)
	}

	if p.Block.Length == 1 && len(value) == 1 {
		_, err = wearlevel.InitByte(s.m, p.Block.Segment(0), value[0])
	} else {
		err = wearlevel.InitBlock(s.m, p.Block, value)
	}
	if err != nil {
		return fmt.Errorf("store: init %q: %w", name, err)
	}
	return nil
}

// InitAll provisions every parameter with its initial value.
func (s *Store) InitAll() error {
	for _, p := range s.params {
		if err := s.Init(p.Name, nil); err != nil {
			return err
		}
	}
	return nil
}

// Read returns the current value of a parameter.
func (s *Store) Read(name string) ([]byte, error) {
	p, err := s.Parameter(name)
	if err != nil {
		return nil, err
	}

	if p.Block.Length == 1 {
		v, err := wearlevel.ReadByte(s.m, p.Block.Segment(0))
		if err != nil {
			return nil, fmt.Errorf("store: read %q: %w", name, err)
		}
		return []byte{v}, nil
	}

	buf := make([]byte, p.Block.Length)
	if err := wearlevel.ReadBlock(s.m, p.Block, buf); err != nil {
		return nil, fmt.Errorf("store: read %q: %w", name, err)
	}
	return buf, nil
}

// Write stores value into a parameter. Unchanged bytes cost nothing.
func (s *Store) Write(name string, value []byte) error {
	p, err := s.Parameter(name)
	if err != nil {
		return err
	}

	if p.Block.Length == 1 && len(value) == 1 {
		err = wearlevel.WriteByte(s.m, p.Block.Segment(0), value[0])
	} else {
		err = wearlevel.WriteBlock(s.m, p.Block, value)
	}
	if err != nil {
		return fmt.Errorf("store: write %q: %w", name, err)
	}
	return nil
}

// Dump prints the used region of the medium.
func (s *Store) Dump(w io.Writer) error {
	return medium.Dump(w, s.m, 0, s.usedEnd)
}
