package app

import (
	"fmt"
	"io"
	"os"

	"github.com/RiveriRiv/payments-aggregator/app/outfmt"
	"github.com/RiveriRiv/payments-aggregator/fx"
	"github.com/RiveriRiv/payments-aggregator/log"
	"github.com/RiveriRiv/payments-aggregator/payments"
)

type DescribedReader struct {
	Desc   string
	Reader io.Reader
}

// RunPaymentsAppToModel parses both feeds and aggregates the payments into
// daily reports, ordered by date. Nothing is returned if either feed has a
// malformed line.
func RunPaymentsAppToModel(
	paymentsReader DescribedReader,
	ratesReader DescribedReader) ([]*payments.DailyReport, error) {

	pmts, err := payments.ParsePaymentsCsv(paymentsReader.Reader)
	if err != nil {
		return nil, err
	}
	log.Verbosef("Read %d payments from %s\n", len(pmts), paymentsReader.Desc)

	rateEntries, err := fx.ParseRatesCsv(ratesReader.Reader)
	if err != nil {
		return nil, err
	}
	log.Verbosef("Read %d rate entries from %s\n", len(rateEntries), ratesReader.Desc)

	rates := fx.NewRateTable(rateEntries)
	reports := payments.AggregateDailyReports(pmts, rates)
	log.Verbosef("Aggregated %d daily reports\n", len(reports))
	return payments.SortedReports(reports), nil
}

func RunPaymentsApp(
	paymentsReader DescribedReader,
	ratesReader DescribedReader,
	writer outfmt.ReportWriter) error {

	reports, err := RunPaymentsAppToModel(paymentsReader, ratesReader)
	if err != nil {
		return err
	}
	for _, report := range reports {
		if err := writer.PrintDailyReport(report); err != nil {
			return fmt.Errorf("Failed to write report for %s: %w", report.Date, err)
		}
	}
	return nil
}

// RunPaymentsAppOnFiles runs the app on the two feed files. Any failure is
// reported as a single line on errPrinter, and also returned.
func RunPaymentsAppOnFiles(
	paymentsFile string,
	ratesFile string,
	writer outfmt.ReportWriter,
	errPrinter log.ErrorPrinter) (retErr error) {

	defer func() {
		if retErr != nil {
			errPrinter.F("An exception occurred: %v\n", retErr)
		}
	}()

	paymentsFp, err := os.Open(paymentsFile)
	if err != nil {
		return err
	}
	defer paymentsFp.Close()

	ratesFp, err := os.Open(ratesFile)
	if err != nil {
		return err
	}
	defer ratesFp.Close()

	return RunPaymentsApp(
		DescribedReader{Desc: paymentsFile, Reader: paymentsFp},
		DescribedReader{Desc: ratesFile, Reader: ratesFp},
		writer)
}
