package fx

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RiveriRiv/payments-aggregator/date"
)

// Currency codes are free text. They are not checked against ISO 4217.
type Currency string

// EUR is the reporting currency. Every converted statistic is expressed in it.
const EUR Currency = "EUR"

// RateEntry is one line of the exchange rates feed.
type RateEntry struct {
	Time time.Time
	From Currency
	To   Currency
	// Multiply an amount in From by Rate to get the amount in To.
	Rate decimal.Decimal
}

func (e RateEntry) Date() date.Date {
	return date.NewFromTime(e.Time)
}

func (e RateEntry) String() string {
	return fmt.Sprintf("%s : %s/%s %s", e.Time.Format("2006-01-02 15:04:05"), e.From, e.To, e.Rate)
}
