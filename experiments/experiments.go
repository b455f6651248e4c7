package experiments

import (
	"fmt"
	"mindgames/experiments/metrics"
	"mindgames/game"
	"mindgames/meta"
	"mindgames/searcher"

	"github.com/rs/zerolog/log"
)

const Root = "experiments"

var (
	SearchDepths   = []int{1, 2, 3, 4, 5, 6}
	SpeedupDepth   = 6
	SpeedupWorkers = []int{1, 2, 4, 8, 16}
)

// RunSearchExperiment compares minimax, sequential alpha-beta and parallel alpha-beta
// over a range of depths from the opening.
func RunSearchExperiment(root string, depths []int, workers int) ([]metrics.SearchRecord, error) {
	configs := []metrics.SearcherConfig{}
	for _, depth := range depths {
		configs = append(configs,
			metrics.SearcherConfig{ID: len(configs) + 1, Algorithm: meta.Minimax, Depth: depth, Workers: 1},
			metrics.SearcherConfig{ID: len(configs) + 2, Algorithm: meta.AlphaBeta, Depth: depth, Workers: 1},
			metrics.SearcherConfig{ID: len(configs) + 3, Algorithm: meta.AlphaBeta, Depth: depth, Workers: workers},
		)
	}

	return runExperiment(root, "search", configs)
}

// RunSpeedupExperiment measures parallel alpha-beta at a fixed depth for each worker count.
func RunSpeedupExperiment(root string, depth int, workers []int) ([]metrics.SearchRecord, error) {
	configs := []metrics.SearcherConfig{}
	for i, w := range workers {
		configs = append(configs, metrics.SearcherConfig{ID: i + 1, Algorithm: meta.AlphaBeta, Depth: depth, Workers: w})
	}

	return runExperiment(root, "speedup", configs)
}

func runExperiment(root, name string, configs []metrics.SearcherConfig) ([]metrics.SearchRecord, error) {
	log.Info().Msgf("starting %s experiment...", name)

	records := []metrics.SearchRecord{}
	for i, config := range configs {
		log.Info().Msgf("starting search %d of %d with %+v...", i+1, len(configs), config)

		result := createSearcher(config).Search(game.NewState(), game.First)
		records = append(records, metrics.NewSearchRecord(config, result))

		log.Info().Msgf("completed search %d of %d: %d nodes in %v", i+1, len(configs), result.Nodes, result.Duration)
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return records, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSearcherConfigs(configs)
	if err != nil {
		return records, fmt.Errorf("failed to store searcher configs: %w", err)
	}
	log.Info().Msg("stored searcher configs")

	// Store experiment results
	err = writer.WriteSearchRecords(records)
	if err != nil {
		return records, fmt.Errorf("failed to write search records: %w", err)
	}
	log.Info().Msgf("stored search records in %s", writer.Dir())

	return records, nil
}

// createSearcher resolves claims by threshold so every config searches the same tree
func createSearcher(config metrics.SearcherConfig) searcher.Searcher {
	options := []searcher.Option{
		searcher.WithRules(game.NewRules(game.ThresholdResolver{Threshold: meta.RESOLUTION_THRESHOLD})),
	}

	if config.Algorithm == meta.Minimax {
		return searcher.NewMinimax(config.Depth, options...)
	}
	if config.Workers > 1 {
		options = append(options, searcher.WithParallel(config.Workers))
	}
	return searcher.NewAlphaBeta(config.Depth, options...)
}
