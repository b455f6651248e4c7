package main

import (
	"flag"
	"fmt"
	"mindgames/agent"
	"mindgames/engine"
	"mindgames/experiments"
	"mindgames/meta"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, defaults apply when empty")
	serve := flag.Bool("serve", false, "Serve the engine over HTTP")
	addr := flag.String("addr", "", "Listen address, overrides the config")
	experiment := flag.String("experiment", "", "Run an experiment: search or speedup")
	statePath := flag.String("state", "", "Search a JSON encoded state file")
	player := flag.Int("player", 1, "Player id (1 or 2) to search for")
	depth := flag.Int("depth", -1, "Search depth, overrides the config")
	flag.Parse()

	cfg := meta.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = meta.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *depth >= 0 {
		cfg.Depth = *depth
	}
	setupLogger(cfg.LogLevel)

	switch {
	case *experiment != "":
		runExperiment(*experiment, cfg.Workers)
	case *serve:
		e := newEngine(cfg)
		if err := agent.StartAgentServer(cfg.Addr, e); err != nil {
			log.Fatal().Err(err).Msg("agent server stopped")
		}
	case *statePath != "":
		search(newEngine(cfg), *statePath, *player, cfg.Depth)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func setupLogger(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", level)
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

func newEngine(cfg meta.Config) *engine.Engine {
	e, err := engine.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create engine")
	}
	return e
}

func search(e *engine.Engine, path string, player, depth int) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read state")
	}

	response, err := e.ComputeMove(data, player, depth)
	if err != nil {
		log.Fatal().Err(err).Msg("search failed")
	}

	if response.BestMove == nil {
		log.Info().Msgf("no move selected, evaluation %.2f", response.Evaluation)
		return
	}
	log.Info().Msgf("best move %s (confidence %.2f), evaluation %.2f, %d nodes in %dms",
		response.BestMove.Action, response.BestMove.Confidence, response.Evaluation,
		response.NodesExplored, response.TimeMs)
}

func runExperiment(name string, workers int) {
	var err error
	switch name {
	case "search":
		_, err = experiments.RunSearchExperiment(experiments.Root, experiments.SearchDepths, workers)
	case "speedup":
		_, err = experiments.RunSpeedupExperiment(experiments.Root, experiments.SpeedupDepth, experiments.SpeedupWorkers)
	default:
		err = fmt.Errorf("unknown experiment %q", name)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
