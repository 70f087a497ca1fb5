package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/emach-lab/statmodal/internal/machine"
	"github.com/emach-lab/statmodal/internal/modal"
)

// Store persists estimate runs under a base directory, one subdirectory per
// run holding metadata.json and frequencies.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string             `json:"id"`
	Label        string             `json:"label"`
	Timestamp    time.Time          `json:"timestamp"`
	Description  string             `json:"description"`
	Machine      machine.Parameters `json:"machine"`
	RadialOrders []int              `json:"radial_orders"`
	Tolerance    float64            `json:"tolerance"`
	Rows         int                `json:"rows"`
}

func (s *Store) Save(label string, params machine.Parameters, radial []int, tol float64, table *modal.Table) (string, error) {
	runID := fmt.Sprintf("%s_%d", label, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Label:        label,
		Timestamp:    time.Now(),
		Description:  table.Description,
		Machine:      params,
		RadialOrders: radial,
		Tolerance:    tol,
		Rows:         len(table.Rows),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frequencies.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"mode", "core_hz", "frame_hz", "system_hz"}); err != nil {
		return "", err
	}

	for _, row := range table.Rows {
		record := []string{
			row.Mode.String(),
			strconv.FormatFloat(row.Core, 'f', 6, 64),
			strconv.FormatFloat(row.Frame, 'f', 6, 64),
			strconv.FormatFloat(row.System, 'f', 6, 64),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTable reads the frequency table of a saved run back from its CSV.
func (s *Store) LoadTable(runID string) (*modal.Table, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "frequencies.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	table := &modal.Table{Description: meta.Description}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			continue
		}

		var mode modal.Mode
		if _, err := fmt.Sscanf(record[0], "(%d,%d)", &mode.M, &mode.N); err != nil {
			continue
		}

		core, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		frame, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		system, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}

		table.Rows = append(table.Rows, modal.Row{Mode: mode, Core: core, Frame: frame, System: system})
	}

	return table, nil
}
