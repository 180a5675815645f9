package outfmt

import (
	"fmt"
	"io"

	tw "github.com/olekukonko/tablewriter"

	"github.com/RiveriRiv/payments-aggregator/payments"
)

// STDWriter prints each report as "Name: value" lines followed by a blank
// line.
type STDWriter struct {
	w io.Writer
}

func NewSTDWriter(w io.Writer) *STDWriter {
	return &STDWriter{
		w: w,
	}
}

// PrintDailyReport implements ReportWriter.
func (w *STDWriter) PrintDailyReport(report *payments.DailyReport) error {
	for _, line := range payments.SummaryLines(report) {
		if _, err := fmt.Fprintln(w.w, line); err != nil {
			return fmt.Errorf("STDWriter.PrintDailyReport: %w", err)
		}
	}
	_, err := fmt.Fprintln(w.w, "")
	return err
}

type TableWriter struct {
	w io.Writer
}

func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{
		w: w,
	}
}

// PrintDailyReport implements ReportWriter.
func (w *TableWriter) PrintDailyReport(report *payments.DailyReport) error {
	tableModel := payments.RenderDailyReportModel(report)
	fmt.Fprintf(w.w, "Payments on %s\n", report.Date)

	table := tw.NewWriter(w.w)
	table.SetHeader(tableModel.Header)
	table.SetBorder(false)
	table.SetRowLine(true)
	table.SetAutoWrapText(false)

	for _, row := range tableModel.Rows {
		table.Append(row)
	}

	table.SetFooter(tableModel.Footer)

	table.Render()

	for _, note := range tableModel.Notes {
		fmt.Fprintln(w.w, note)
	}

	_, err := fmt.Fprintln(w.w, "")
	return err
}
