package config

import "github.com/tamzrod/wearlevel/internal/layout"

// placement is the resolved medium span of one parameter, [start, end).
// ints so a span past the 16-bit address space is reported, not wrapped.
type placement struct {
	name  string
	start int
	end   int
}

// Factor returns the effective wear level factor.
func (l LayoutConfig) Factor() int {
	if l.WearLevelFactor == 0 {
		return layout.DefaultFactor
	}
	return l.WearLevelFactor
}

// Geometry returns the layout geometry for the effective factor.
func (l LayoutConfig) Geometry() layout.Geometry {
	return layout.Geometry{Factor: l.Factor()}
}

// placements resolves every parameter span without mutating cfg.
// A parameter without an address starts where the previous one ended.
func placements(cfg *Config) []placement {
	g := cfg.Layout.Geometry()

	out := make([]placement, 0, len(cfg.Parameters))
	next := 0

	for _, p := range cfg.Parameters {
		start := next
		if p.Address != nil {
			start = int(*p.Address)
		}
		end := start + g.BlockSize(p.Length)

		out = append(out, placement{
			name:  p.Name,
			start: start,
			end:   end,
		})
		next = end
	}

	return out
}

// UsedEnd returns the first address after the highest used parameter.
func UsedEnd(cfg *Config) int {
	used := 0
	for _, pl := range placements(cfg) {
		if pl.end > used {
			used = pl.end
		}
	}
	return used
}
