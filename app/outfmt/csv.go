package outfmt

import (
	"encoding/csv"
	"fmt"
	"os"
	"path"

	"github.com/RiveriRiv/payments-aggregator/payments"
)

// CSVWriter writes one <date>.csv file per report into OutDir.
type CSVWriter struct {
	OutDir string
}

// PrintDailyReport implements ReportWriter.
func (w *CSVWriter) PrintDailyReport(report *payments.DailyReport) error {
	tableModel := payments.RenderDailyReportModel(report)
	fn := fmt.Sprintf("%s.csv", report.Date)

	fp, err := os.Create(path.Join(w.OutDir, fn))
	if err != nil {
		return fmt.Errorf("Create file %q: %w", fn, err)
	}
	defer fp.Close()

	csvWriter := csv.NewWriter(fp)

	if err := csvWriter.Write(tableModel.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range tableModel.Rows {
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func NewCSVWriter(outDir string) (*CSVWriter, error) {
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("Creating CSV output directory: %w", err)
	}
	return &CSVWriter{OutDir: outDir}, nil
}
