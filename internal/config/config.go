package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Layout     LayoutConfig      `yaml:"layout"`
	Medium     MediumConfig      `yaml:"medium"`
	Parameters []ParameterConfig `yaml:"parameters"`
}

// ---- LAYOUT ----

type LayoutConfig struct {
	WearLevelFactor int `yaml:"wear_level_factor"` // 0 => layout.DefaultFactor
	MediumSize      int `yaml:"medium_size"`

	// End is the first address after the last used parameter (optional).
	// When set, every parameter must fit below it and it must fit the medium.
	End *int `yaml:"end"`
}

// ---- MEDIUM ----

const (
	MediumMemory = "memory"
	MediumFile   = "file"
	MediumModbus = "modbus"
)

type MediumConfig struct {
	Kind string `yaml:"kind"` // memory (default), file, modbus

	// file
	Path string `yaml:"path"`

	// modbus
	Endpoint  string `yaml:"endpoint"`
	Transport string `yaml:"transport"` // tcp (default) or rtu
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`
	BaudRate  int    `yaml:"baud_rate"`

	// Metered enables wear counters on the medium.
	Metered bool `yaml:"metered"`
}

// ---- PARAMETERS ----

type ParameterConfig struct {
	Name    string  `yaml:"name"`
	Length  int     `yaml:"length"`  // bytes; 1 for a byte parameter
	Address *uint16 `yaml:"address"` // nil => right after the previous parameter
	Initial []int   `yaml:"initial"` // optional, one entry per byte
}

// Load reads and decodes the YAML file at path.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML document.
func Parse(raw []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return &cfg, nil
}
