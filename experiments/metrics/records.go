package metrics

import (
	"fmt"
	"mindgames/searcher"
	"time"
)

type SearcherConfig struct {
	ID        int
	Algorithm string
	Depth     int
	Workers   int
}

type SearchRecord struct {
	Searcher   int // SearcherConfig.ID
	Algorithm  string
	Depth      int
	Workers    int
	Nodes      int64
	Cutoffs    int64
	Evaluation float64
	Duration   time.Duration
	Move       string
}

// NewSearchRecord flattens a search result for storage. Move is empty when none was selected.
func NewSearchRecord(config SearcherConfig, result searcher.Result) SearchRecord {
	record := SearchRecord{
		Searcher:   config.ID,
		Algorithm:  config.Algorithm,
		Depth:      result.Depth,
		Workers:    result.Workers,
		Nodes:      result.Nodes,
		Cutoffs:    result.Cutoffs,
		Evaluation: result.Evaluation,
		Duration:   result.Duration,
	}
	if result.Move != nil {
		record.Move = result.Move.String()
	}
	return record
}

// Speedup of each record over the single worker record of the same algorithm and depth.
func Speedup(records []SearchRecord) map[int]float64 {
	baseline := make(map[string]time.Duration)
	for _, record := range records {
		if record.Workers == 1 {
			baseline[baselineKey(record)] = record.Duration
		}
	}

	speedups := make(map[int]float64, len(records))
	for _, record := range records {
		base, ok := baseline[baselineKey(record)]
		if !ok || record.Duration <= 0 {
			continue
		}
		speedups[record.Searcher] = float64(base) / float64(record.Duration)
	}
	return speedups
}

func baselineKey(record SearchRecord) string {
	return fmt.Sprintf("%s/%d", record.Algorithm, record.Depth)
}
