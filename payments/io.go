package payments

import (
	"io"

	"github.com/RiveriRiv/payments-aggregator/csvrec"
	"github.com/RiveriRiv/payments-aggregator/fx"
)

const PaymentsFileDesc = "payments"

// ParsePaymentsCsv reads "<timestamp>;<company>;<currency>;<amount>" lines,
// failing on the first malformed one.
func ParsePaymentsCsv(r io.Reader) ([]*Payment, error) {
	records, err := csvrec.ReadRecords(r, PaymentsFileDesc)
	if err != nil {
		return nil, err
	}

	pmts := make([]*Payment, 0, len(records))
	for _, record := range records {
		t, err := record.Timestamp(0, PaymentsFileDesc)
		if err != nil {
			return nil, err
		}
		amount, err := record.Decimal(3, PaymentsFileDesc)
		if err != nil {
			return nil, err
		}
		pmts = append(pmts, &Payment{
			Time:     t,
			Company:  record.Fields[1],
			Currency: fx.Currency(record.Fields[2]),
			Amount:   amount,
		})
	}
	return pmts, nil
}
