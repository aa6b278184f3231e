package store

import (
	"fmt"
	"time"

	"github.com/tamzrod/wearlevel/internal/config"
	"github.com/tamzrod/wearlevel/internal/medium"
	mbmedium "github.com/tamzrod/wearlevel/internal/medium/modbus"
)

// Build opens the medium cfg describes and binds the layout to it.
// cfg must have passed Validate and Normalize.
// With readOnly set, a file medium is mapped read-only.
func Build(cfg *config.Config, readOnly bool) (*Store, func() error, error) {
	m, closeMedium, err := openMedium(cfg, readOnly)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Medium.Metered {
		m = medium.NewMetered(m)
	}

	s, err := New(m, cfg)
	if err != nil {
		_ = closeMedium()
		return nil, nil, err
	}
	return s, closeMedium, nil
}

func openMedium(cfg *config.Config, readOnly bool) (medium.Medium, func() error, error) {
	mc := cfg.Medium
	size := cfg.Layout.MediumSize
	noop := func() error { return nil }

	switch mc.Kind {
	case "", config.MediumMemory:
		return medium.NewMemory(size), noop, nil

	case config.MediumFile:
		if readOnly {
			img, err := medium.OpenImage(mc.Path)
			if err != nil {
				return nil, nil, err
			}
			return img, img.Close, nil
		}
		f, err := medium.OpenFile(mc.Path, size)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil

	case config.MediumModbus:
		mb, err := mbmedium.New(mbmedium.Config{
			Transport: mc.Transport,
			Endpoint:  mc.Endpoint,
			UnitID:    mc.UnitID,
			Timeout:   time.Duration(mc.TimeoutMs) * time.Millisecond,
			BaudRate:  mc.BaudRate,
			Size:      size,
		})
		if err != nil {
			return nil, nil, err
		}
		return mb, mb.Close, nil

	default:
		return nil, nil, fmt.Errorf("store: unknown medium kind %q", mc.Kind)
	}
}
