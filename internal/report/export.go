package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/emach-lab/statmodal/internal/machine"
	"github.com/emach-lab/statmodal/internal/modal"
)

// ExportData is the JSON export envelope for one estimate.
type ExportData struct {
	Description  string             `json:"description"`
	Machine      machine.Parameters `json:"machine"`
	RadialOrders []int              `json:"radial_orders"`
	Rows         []modal.Row        `json:"rows"`
}

func ExportJSON(path string, params machine.Parameters, radial []int, table *modal.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, params, radial, table)
}

func ExportJSONStdout(params machine.Parameters, radial []int, table *modal.Table) error {
	return writeJSON(os.Stdout, params, radial, table)
}

func writeJSON(w io.Writer, params machine.Parameters, radial []int, table *modal.Table) error {
	data := ExportData{
		Description:  table.Description,
		Machine:      params,
		RadialOrders: radial,
		Rows:         table.Rows,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes the table in the same column layout the run store uses.
func WriteCSV(out io.Writer, table *modal.Table) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"mode", "core_hz", "frame_hz", "system_hz"}); err != nil {
		return err
	}

	for _, row := range table.Rows {
		record := []string{
			row.Mode.String(),
			strconv.FormatFloat(row.Core, 'f', 6, 64),
			strconv.FormatFloat(row.Frame, 'f', 6, 64),
			strconv.FormatFloat(row.System, 'f', 6, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
