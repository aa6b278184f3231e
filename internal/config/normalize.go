package config

import "github.com/tamzrod/wearlevel/internal/layout"

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// ------------------------------------------------------------
	// LAYOUT DEFAULTS
	// ------------------------------------------------------------

	if cfg.Layout.WearLevelFactor == 0 {
		cfg.Layout.WearLevelFactor = layout.DefaultFactor
	}

	// ------------------------------------------------------------
	// ADDRESS ASSIGNMENT
	// ------------------------------------------------------------

	// Validate has already proven every span fits the 16-bit medium.
	for i, pl := range placements(cfg) {
		p := &cfg.Parameters[i]
		if p.Address == nil {
			addr := uint16(pl.start)
			p.Address = &addr
		}
	}

	// ------------------------------------------------------------
	// MEDIUM DEFAULTS
	// ------------------------------------------------------------

	if cfg.Medium.Kind == "" {
		cfg.Medium.Kind = MediumMemory
	}
	if cfg.Medium.Kind == MediumModbus && cfg.Medium.TimeoutMs == 0 {
		cfg.Medium.TimeoutMs = 1000
	}
}
