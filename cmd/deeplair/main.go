// Command deeplair runs the lair adversary automaton over a scenario and
// prints the resulting action trail.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"deeplair.ai/internal/config"
	"deeplair.ai/internal/logger"
	"deeplair.ai/internal/scenario"
	"deeplair.ai/pkg/actionlog"
	"deeplair.ai/pkg/lair"
)

func main() {
	logger.Init()
	diag := logger.Get()

	var (
		configPath   string
		scenarioPath string
		phases       string
	)
	flag.StringVar(&configPath, "config", "", "Config file (YAML); empty uses defaults")
	flag.StringVar(&scenarioPath, "scenario", "", "Scenario file (JSON); empty uses the built-in twin-isles")
	flag.StringVar(&phases, "phases", "indigo,call,ravage", "Comma-separated phases to run")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		diag.Fatal().Err(err).Msg("load config")
	}
	if scenarioPath == "" {
		scenarioPath = cfg.Scenario
	}

	var sc *scenario.Scenario
	if scenarioPath == "" {
		sc, err = scenario.Default()
	} else {
		sc, err = scenario.Load(scenarioPath)
	}
	if err != nil {
		diag.Fatal().Err(err).Msg("load scenario")
	}

	m, err := sc.BuildMap()
	if err != nil {
		diag.Fatal().Err(err).Msg("build map")
	}
	conf := cfg.LairConf()
	lands, ignored, err := sc.BuildLands(m, conf)
	if err != nil {
		diag.Fatal().Err(err).Msg("build lands")
	}

	alog := actionlog.New()
	engine, err := lair.New(lands, ignored, sc.Lair, conf, alog, m)
	if err != nil {
		diag.Fatal().Err(err).Msg("construct engine")
	}

	runlog := logger.ForRun(engine.State().RunID.String())
	runlog.Info().Str("scenario", sc.Name).Str("phases", phases).Msg("run starting")

	for _, phase := range strings.Split(phases, ",") {
		if err := runPhase(engine, strings.TrimSpace(phase)); err != nil {
			runlog.Fatal().Err(err).Msg("run phase")
		}
	}

	state := engine.State()
	runlog.Info().
		Int("gathers", state.TotalGathers).
		Int("fear", state.Fear).
		Int("wasted_damage", state.WastedDamage).
		Int("wasted_downgrades", state.WastedDowngrades).
		Int("wasted_invader_gathers", state.WastedInvaderGathers).
		Int("wasted_warden_gathers", state.WastedWardenGathers).
		Msg("run complete")

	if err := alog.Render(os.Stdout); err != nil {
		runlog.Fatal().Err(err).Msg("render action log")
	}
}

func runPhase(engine *lair.Engine, phase string) error {
	switch phase {
	case "indigo":
		engine.Run(lair.FactionIndigo)
	case "amber":
		engine.Run(lair.FactionAmber)
	case "thresh1":
		engine.Threshold1()
	case "thresh2":
		engine.Threshold2()
	case "thresh3-indigo":
		engine.Threshold3(lair.FactionIndigo)
	case "thresh3-amber":
		engine.Threshold3(lair.FactionAmber)
	case "call":
		engine.Call()
	case "ravage":
		engine.Ravage()
	case "blur":
		engine.Blur()
	case "blur2":
		engine.Blur2()
	default:
		return fmt.Errorf("unknown phase %q", phase)
	}
	return nil
}
