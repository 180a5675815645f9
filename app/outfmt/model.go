package outfmt

import (
	"fmt"
	"io"

	"github.com/RiveriRiv/payments-aggregator/config"
	"github.com/RiveriRiv/payments-aggregator/payments"
)

type ReportWriter interface {
	PrintDailyReport(report *payments.DailyReport) error
}

// NewReportWriter picks the writer for a config.Format* value. Text and table
// output go to w.
func NewReportWriter(format string, w io.Writer, outDir string) (ReportWriter, error) {
	switch format {
	case config.FormatText:
		return NewSTDWriter(w), nil
	case config.FormatTable:
		return NewTableWriter(w), nil
	case config.FormatCSV:
		return NewCSVWriter(outDir)
	}
	return nil, fmt.Errorf("Output format %q not implemented", format)
}
