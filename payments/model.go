package payments

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/RiveriRiv/payments-aggregator/date"
	"github.com/RiveriRiv/payments-aggregator/fx"
)

// Payment is one line of the payments feed. Amount may be negative or zero.
type Payment struct {
	Time     time.Time
	Company  string
	Currency fx.Currency
	Amount   decimal.Decimal
}

func (p *Payment) Date() date.Date {
	return date.NewFromTime(p.Time)
}
