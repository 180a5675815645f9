package fx

import (
	"io"

	"github.com/RiveriRiv/payments-aggregator/csvrec"
)

const RatesFileDesc = "exchange rates"

// ParseRatesCsv reads "<timestamp>;<from>;<to>;<rate>" lines. Rows with a
// target other than EUR are still validated.
func ParseRatesCsv(r io.Reader) ([]RateEntry, error) {
	records, err := csvrec.ReadRecords(r, RatesFileDesc)
	if err != nil {
		return nil, err
	}

	entries := make([]RateEntry, 0, len(records))
	for _, record := range records {
		t, err := record.Timestamp(0, RatesFileDesc)
		if err != nil {
			return nil, err
		}
		rate, err := record.Decimal(3, RatesFileDesc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, RateEntry{
			Time: t,
			From: Currency(record.Fields[1]),
			To:   Currency(record.Fields[2]),
			Rate: rate,
		})
	}
	return entries, nil
}
