package config

import (
	"os"
	"path/filepath"
	"testing"

	"deeplair.ai/pkg/lair"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LandPriority != "WJSMC" {
		t.Errorf("LandPriority = %q, want WJSMC", cfg.LandPriority)
	}
	if cfg.PieceNames.Scout != "scout" || cfg.PieceNames.Warden != "warden" {
		t.Errorf("unexpected default piece names: %+v", cfg.PieceNames)
	}
	if cfg.ShowRange {
		t.Error("ShowRange should default to false")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeplair.yaml")
	raw := []byte(`
land_priority: MSJWC
reserve_gathers_indigo: 2
reckless_offensive: ["P4", "Q1"]
piece_names:
  scout: drone
show_range: true
`)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LandPriority != "MSJWC" {
		t.Errorf("LandPriority = %q, want MSJWC", cfg.LandPriority)
	}
	if cfg.ReserveGathersIndigo != 2 || cfg.ReserveGathersAmber != 0 {
		t.Errorf("reserves = %d/%d, want 2/0", cfg.ReserveGathersIndigo, cfg.ReserveGathersAmber)
	}
	if len(cfg.RecklessOffensive) != 2 || cfg.RecklessOffensive[0] != "P4" {
		t.Errorf("RecklessOffensive = %v", cfg.RecklessOffensive)
	}
	if cfg.PieceNames.Scout != "drone" {
		t.Errorf("piece name scout = %q, want drone", cfg.PieceNames.Scout)
	}
	if !cfg.ShowRange {
		t.Error("ShowRange should be true")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeplair.yaml")
	if err := os.WriteFile(path, []byte("land_priority: MSJWC\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DEEPLAIR_LAND_PRIORITY", "JW")
	t.Setenv("DEEPLAIR_RECKLESS_OFFENSIVE", "P1,P2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LandPriority != "JW" {
		t.Errorf("LandPriority = %q, want env override JW", cfg.LandPriority)
	}
	if len(cfg.RecklessOffensive) != 2 || cfg.RecklessOffensive[1] != "P2" {
		t.Errorf("RecklessOffensive = %v, want [P1 P2]", cfg.RecklessOffensive)
	}
}

func TestLoad_MissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicitly named missing file should error")
	}
}

func TestLairConf(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.ReserveGathersIndigo = 3
	cfg.ReserveGathersAmber = 1

	conf := cfg.LairConf()
	if err := conf.Validate(); err != nil {
		t.Fatalf("default conf should validate: %v", err)
	}
	if conf.ReserveGathers[lair.FactionIndigo] != 3 || conf.ReserveGathers[lair.FactionAmber] != 1 {
		t.Errorf("reserves = %v", conf.ReserveGathers)
	}
}
