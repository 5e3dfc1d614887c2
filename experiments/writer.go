package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment output as CSV files under a timestamped
// directory, one directory per experiment run.
type Writer struct {
	baseDir string
}

// NewWriter creates <dir>/<name>/<timestamp>/ and returns a writer rooted
// there.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory this writer stores files in.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WritePlannerConfigs stores the planner setups used in the experiment.
func (w *Writer) WritePlannerConfigs(configs []PlannerConfig) error {
	path := filepath.Join(w.baseDir, "planner_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create planner configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "name", "rollouts", "max_depth", "gamma", "c_uct", "seed"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write planner configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Name,
			strconv.Itoa(config.Rollouts),
			strconv.Itoa(config.MaxDepth),
			strconv.FormatFloat(config.Gamma, 'g', -1, 64),
			strconv.FormatFloat(config.CUCT, 'g', -1, 64),
			strconv.FormatUint(config.Seed, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write planner config row: %w", err)
		}
	}
	return nil
}

// WriteEpisodeRecords stores per-episode results for one planner, tagged
// with the planner's config ID.
func (w *Writer) WriteEpisodeRecords(plannerID int, records []EpisodeRecord) error {
	path := filepath.Join(w.baseDir, fmt.Sprintf("episodes_%d.csv", plannerID))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create episode records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"planner", "episode", "steps", "reward", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write episode records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(plannerID),
			strconv.Itoa(record.Episode),
			strconv.Itoa(record.Steps),
			strconv.FormatFloat(record.Reward, 'g', -1, 64),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write episode record row: %w", err)
		}
	}
	return nil
}
