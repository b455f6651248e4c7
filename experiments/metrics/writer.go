package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the files of one experiment run.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSearcherConfigs(configs []SearcherConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Algorithm,
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Workers),
		})
	}

	header := []string{"id", "algorithm", "depth", "workers"}
	return w.write("searcher_configs.csv", header, rows)
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	speedups := Speedup(records)

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		speedup := ""
		if s, ok := speedups[record.Searcher]; ok {
			speedup = strconv.FormatFloat(s, 'f', 3, 64)
		}
		rows = append(rows, []string{
			strconv.Itoa(record.Searcher),
			record.Algorithm,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Workers),
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Cutoffs, 10),
			strconv.FormatFloat(record.Evaluation, 'f', -1, 64),
			record.Duration.String(),
			speedup,
			record.Move,
		})
	}

	header := []string{"searcher", "algorithm", "depth", "workers", "nodes", "cutoffs", "evaluation", "duration", "speedup", "move"}
	return w.write("search_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}

	// Write each row
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}

	return nil
}
