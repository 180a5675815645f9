package fx

import (
	"github.com/shopspring/decimal"

	"github.com/RiveriRiv/payments-aggregator/date"
	"github.com/RiveriRiv/payments-aggregator/log"
)

// DailyRates maps a source currency to its rate into EUR on one date.
type DailyRates map[Currency]decimal.Decimal

// RateTable holds the EUR rates of each date. Time of day is not kept, so
// several entries on one date collapse into one.
type RateTable struct {
	rates map[date.Date]DailyRates
}

// NewRateTable keeps only the entries which convert into EUR. When a date has
// more than one entry for a currency, the last one in entries wins.
func NewRateTable(entries []RateEntry) *RateTable {
	table := &RateTable{rates: make(map[date.Date]DailyRates)}
	dropped := 0
	for _, entry := range entries {
		if entry.To != EUR {
			dropped++
			continue
		}
		d := entry.Date()
		dayRates, ok := table.rates[d]
		if !ok {
			dayRates = make(DailyRates)
			table.rates[d] = dayRates
		}
		if prev, ok := dayRates[entry.From]; ok {
			log.Tracef("fx", "%s %s rate %s replaced by %s", d, entry.From, prev, entry.Rate)
		}
		dayRates[entry.From] = entry.Rate
	}
	log.Verbosef("Kept EUR rates for %d dates, dropped %d non-EUR rate entries\n",
		len(table.rates), dropped)
	return table
}

// RatesForDate never returns nil. A date without rates gives an empty map.
func (t *RateTable) RatesForDate(d date.Date) DailyRates {
	if dayRates, ok := t.rates[d]; ok {
		return dayRates
	}
	return DailyRates{}
}

func (t *RateTable) Len() int {
	return len(t.rates)
}
