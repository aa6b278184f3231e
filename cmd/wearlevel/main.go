// cmd/wearlevel/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/tamzrod/wearlevel/internal/config"
	"github.com/tamzrod/wearlevel/internal/metrics"
	"github.com/tamzrod/wearlevel/internal/store"
)

const usage = `usage: wearlevel <config.yaml> <command> [args]

commands:
  check                     validate the layout against the medium (no I/O)
  dump                      hex dump of the used medium region
  init  [name]              provision one or all parameters (resets history)
  read  [name]              print one or all parameters
  write <name> <hex>...     store one byte per hex argument`

func main() {
	if len(os.Args) < 3 {
		log.Fatal(usage)
	}

	cfgPath := os.Args[1]
	cmd := os.Args[2]
	args := os.Args[3:]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	if cmd == "check" {
		printLayout(cfg)
		return
	}

	// --------------------
	// Open medium
	// --------------------

	readOnly := cmd == "dump" || cmd == "read"

	s, closeStore, err := store.Build(cfg, readOnly)
	if err != nil {
		log.Fatalf("medium open failed (kind=%s): %v", cfg.Medium.Kind, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("medium close failed: %v", err)
		}
	}()

	if err := run(s, cmd, args); err != nil {
		log.Printf("%s failed: %v", cmd, err)
		_ = closeStore()
		os.Exit(1)
	}

	if cfg.Medium.Metered {
		snap := metrics.Collect()
		log.Printf(
			"wear: reads=%.0f writes=%.0f skipped=%.0f max_cell=%.0f",
			snap.Reads, snap.Writes, snap.SkippedWrites, snap.MaxCellWrites,
		)
	}
}

func run(s *store.Store, cmd string, args []string) error {
	switch cmd {
	case "dump":
		return s.Dump(os.Stdout)

	case "init":
		if len(args) == 0 {
			return s.InitAll()
		}
		return s.Init(args[0], nil)

	case "read":
		names := args
		if len(names) == 0 {
			for _, p := range s.Parameters() {
				names = append(names, p.Name)
			}
		}
		for _, name := range names {
			v, err := s.Read(name)
			if err != nil {
				return err
			}
			fmt.Printf("%s: % X\n", name, v)
		}
		return nil

	case "write":
		if len(args) < 2 {
			return fmt.Errorf("write needs a name and at least one byte")
		}
		value, err := parseBytes(args[1:])
		if err != nil {
			return err
		}
		return s.Write(args[0], value)

	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

func parseBytes(args []string) ([]byte, error) {
	out := make([]byte, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseUint(a, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("byte %q: %w", a, err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

func printLayout(cfg *config.Config) {
	g := cfg.Layout.Geometry()
	limit := cfg.Layout.MediumSize
	if cfg.Layout.End != nil {
		limit = *cfg.Layout.End
	}

	fmt.Printf("wear level factor %d, segment %d bytes\n", g.Factor, g.SegmentSize())
	for _, p := range cfg.Parameters {
		blk := g.Block(*p.Address, p.Length)
		fmt.Printf("  %-16s addr=%-5d len=%-3d span=%d-%d\n", p.Name, blk.Base, blk.Length, blk.Base, blk.End()-1)
	}
	fmt.Printf("used %d of %d bytes\n", config.UsedEnd(cfg), limit)
}
