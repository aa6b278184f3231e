package config

import (
	"fmt"

	"github.com/tamzrod/wearlevel/internal/layout"
)

// Validate checks configuration correctness.
// It performs declarative validation only: this is the static capacity
// check run before any medium is touched.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}

	// ------------------------------------------------------------
	// LAYOUT VALIDATION
	// ------------------------------------------------------------

	if err := cfg.Layout.Geometry().Validate(); err != nil {
		return fmt.Errorf("config: wear_level_factor: %w", err)
	}

	size := cfg.Layout.MediumSize
	if size <= 0 || size > layout.AddressSpace {
		return fmt.Errorf("config: medium_size %d out of range (1..%d)", size, layout.AddressSpace)
	}

	if e := cfg.Layout.End; e != nil {
		if *e <= 0 || *e > size {
			return fmt.Errorf(
				"config: end %d exceeds available medium (%d bytes); consider a lower wear_level_factor",
				*e,
				size,
			)
		}
	}

	// ------------------------------------------------------------
	// PARAMETER VALIDATION
	// ------------------------------------------------------------

	if len(cfg.Parameters) == 0 {
		return fmt.Errorf("config: at least one parameter required")
	}

	names := make(map[string]struct{}, len(cfg.Parameters))

	for _, p := range cfg.Parameters {
		if p.Name == "" {
			return fmt.Errorf("config: parameter name required")
		}
		if _, dup := names[p.Name]; dup {
			return fmt.Errorf("config: duplicate parameter %q", p.Name)
		}
		names[p.Name] = struct{}{}

		if p.Length <= 0 {
			return fmt.Errorf("config: parameter %q: length must be > 0", p.Name)
		}

		if len(p.Initial) != 0 && len(p.Initial) != p.Length {
			return fmt.Errorf(
				"config: parameter %q: initial has %d bytes, length is %d",
				p.Name,
				len(p.Initial),
				p.Length,
			)
		}
		for i, v := range p.Initial {
			if v < 0 || v > 0xFF {
				return fmt.Errorf("config: parameter %q: initial[%d]=%d is not a byte", p.Name, i, v)
			}
		}
	}

	// ------------------------------------------------------------
	// CAPACITY + OVERLAP VALIDATION
	// ------------------------------------------------------------

	limit := size
	if cfg.Layout.End != nil {
		limit = *cfg.Layout.End
	}

	spans := placements(cfg)

	for i, s := range spans {
		if s.end > limit {
			return fmt.Errorf(
				"config: parameter %q range=%d-%d exceeds available medium (limit %d); consider a lower wear_level_factor",
				s.name,
				s.start,
				s.end-1,
				limit,
			)
		}

		for _, prev := range spans[:i] {
			// overlap check (half-open: touching spans are fine)
			if s.start < prev.end && prev.start < s.end {
				return fmt.Errorf(
					"config: memory overlap: parameter %q range=%d-%d overlaps with parameter %q range=%d-%d",
					s.name,
					s.start,
					s.end-1,
					prev.name,
					prev.start,
					prev.end-1,
				)
			}
		}
	}

	// ------------------------------------------------------------
	// MEDIUM VALIDATION
	// ------------------------------------------------------------

	m := cfg.Medium
	switch m.Kind {
	case "", MediumMemory:
	case MediumFile:
		if m.Path == "" {
			return fmt.Errorf("config: medium kind %q requires path", m.Kind)
		}
	case MediumModbus:
		if m.Endpoint == "" {
			return fmt.Errorf("config: medium kind %q requires endpoint", m.Kind)
		}
		switch m.Transport {
		case "", "tcp", "rtu":
		default:
			return fmt.Errorf("config: unknown modbus transport %q", m.Transport)
		}
		if m.TimeoutMs < 0 {
			return fmt.Errorf("config: timeout_ms must be >= 0")
		}
	default:
		return fmt.Errorf("config: unknown medium kind %q", m.Kind)
	}

	return nil
}
