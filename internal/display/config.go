// Package display renders CPU state to a terminal and loads the simulator's
// optional TOML display configuration (SPEC_FULL.md §10/§11), the one piece
// of surface area the teacher's own terminal dump doesn't have an analogue
// for.
package display

import "github.com/BurntSushi/toml"

// Config controls how the per-cycle state dump is rendered. The zero value
// renders decimal registers without clearing the screen; DefaultConfig is
// the default.
type Config struct {
	Hex         bool `toml:"hex"`
	ClearScreen bool `toml:"clear_screen"`
}

// DefaultConfig matches spec.md §6's literal description of the dump: hex
// register values, clearing the screen before every cycle.
func DefaultConfig() Config {
	return Config{Hex: true, ClearScreen: true}
}

// LoadConfig decodes a TOML file into a Config seeded with DefaultConfig,
// so an omitted key keeps its default rather than zeroing out.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
