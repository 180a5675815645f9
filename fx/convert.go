package fx

import (
	"github.com/shopspring/decimal"

	decimal_opt "github.com/RiveriRiv/payments-aggregator/decimal_value"
)

// ConvertToEUR returns amount in EUR, or decimal_opt.Null when rates has no
// entry for currency. Amounts already in EUR are returned as-is, keeping their
// scale. Otherwise the result's scale is the sum of the amount's and the rate's.
func ConvertToEUR(amount decimal.Decimal, currency Currency, rates DailyRates) decimal_opt.DecimalOpt {
	if currency == EUR {
		return decimal_opt.New(amount)
	}
	rate, ok := rates[currency]
	if !ok {
		return decimal_opt.Null
	}
	return decimal_opt.New(amount).MulD(rate)
}
