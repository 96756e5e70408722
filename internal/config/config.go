// Package config loads run configuration: defaults, then an optional YAML
// file, then environment variable overrides, in that order.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"deeplair.ai/pkg/lair"
)

// PieceNames configures the display names used in the action log.
type PieceNames struct {
	Scout  string `yaml:"scout" env:"DEEPLAIR_NAME_SCOUT"`
	Camp   string `yaml:"camp" env:"DEEPLAIR_NAME_CAMP"`
	Fort   string `yaml:"fort" env:"DEEPLAIR_NAME_FORT"`
	Warden string `yaml:"warden" env:"DEEPLAIR_NAME_WARDEN"`
}

// Config is the full run configuration.
type Config struct {
	// Scenario is the path of the scenario file; empty uses the built-in
	// twin-isles scenario.
	Scenario string `yaml:"scenario" env:"DEEPLAIR_SCENARIO"`

	// LandPriority orders terrain codes for targeting; earlier is higher.
	LandPriority string `yaml:"land_priority" env:"DEEPLAIR_LAND_PRIORITY"`

	ReserveGathersIndigo int `yaml:"reserve_gathers_indigo" env:"DEEPLAIR_RESERVE_INDIGO"`
	ReserveGathersAmber  int `yaml:"reserve_gathers_amber" env:"DEEPLAIR_RESERVE_AMBER"`

	// RecklessOffensive lists land-key substrings protected by the
	// minimum-reserve rule.
	RecklessOffensive []string `yaml:"reckless_offensive" env:"DEEPLAIR_RECKLESS_OFFENSIVE" envSeparator:","`

	PieceNames PieceNames `yaml:"piece_names"`

	// ShowRange appends each land's lair distance to its display name.
	ShowRange bool `yaml:"show_range" env:"DEEPLAIR_SHOW_RANGE"`
}

func defaults() *Config {
	names := lair.DefaultPieceNames()
	return &Config{
		LandPriority: "WJSMC",
		PieceNames: PieceNames{
			Scout:  names.Scout,
			Camp:   names.Camp,
			Fort:   names.Fort,
			Warden: names.Warden,
		},
	}
}

// Load builds the configuration. A missing file path is fine; a present
// but unreadable or malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// LairConf converts the configuration into the engine's Conf.
func (c *Config) LairConf() *lair.Conf {
	return &lair.Conf{
		LandPriority: c.LandPriority,
		ReserveGathers: map[lair.Faction]int{
			lair.FactionIndigo: c.ReserveGathersIndigo,
			lair.FactionAmber:  c.ReserveGathersAmber,
		},
		RecklessOffensive: c.RecklessOffensive,
		PieceNames: lair.PieceNames{
			Scout:  c.PieceNames.Scout,
			Camp:   c.PieceNames.Camp,
			Fort:   c.PieceNames.Fort,
			Warden: c.PieceNames.Warden,
		},
		ShowRange: c.ShowRange,
	}
}
