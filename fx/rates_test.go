package fx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/RiveriRiv/payments-aggregator/date"
	"github.com/RiveriRiv/payments-aggregator/fx"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mkEntry(ts string, from, to fx.Currency, rate string) fx.RateEntry {
	t, err := time.Parse("2006-01-02 15:04:05", ts)
	if err != nil {
		panic(err)
	}
	return fx.RateEntry{Time: t, From: from, To: to, Rate: dec(rate)}
}

func TestRateTableKeepsOnlyEURTargets(t *testing.T) {
	rq := require.New(t)

	table := fx.NewRateTable([]fx.RateEntry{
		mkEntry("2025-02-14 00:00:00", "USD", "EUR", "0.85"),
		mkEntry("2025-02-14 00:00:00", "GBP", "USD", "1.25"),
		mkEntry("2025-02-14 09:00:00", "EUR", "GBP", "0.83"),
	})

	rates := table.RatesForDate(date.New(2025, 2, 14))
	rq.Equal(1, len(rates))
	rq.True(rates["USD"].Equal(dec("0.85")))
	_, ok := rates["GBP"]
	rq.False(ok)
	_, ok = rates["EUR"]
	rq.False(ok)
}

func TestRateTableCollapsesToDate(t *testing.T) {
	rq := require.New(t)

	table := fx.NewRateTable([]fx.RateEntry{
		mkEntry("2025-02-14 00:00:00", "USD", "EUR", "0.85"),
		mkEntry("2025-02-14 23:59:59", "USD", "EUR", "0.87"),
		mkEntry("2025-02-14 12:00:00", "USD", "EUR", "0.86"),
		mkEntry("2025-02-15 00:00:00", "USD", "EUR", "0.90"),
	})
	rq.Equal(2, table.Len())

	// Last one in input order wins, not the latest time of day.
	rq.Equal("0.86", table.RatesForDate(date.New(2025, 2, 14))["USD"].String())
	rq.Equal("0.9", table.RatesForDate(date.New(2025, 2, 15))["USD"].String())
}

func TestRateTableMissingDate(t *testing.T) {
	rq := require.New(t)

	table := fx.NewRateTable(nil)
	rates := table.RatesForDate(date.New(2025, 2, 14))
	rq.NotNil(rates)
	rq.Empty(rates)
	rq.Equal(0, table.Len())
}

func TestParseRatesCsv(t *testing.T) {
	rq := require.New(t)

	entries, err := fx.ParseRatesCsv(strings.NewReader(
		"2025-02-14 00:00:00;USD;EUR;0.85\n" +
			"2025-02-14 00:00:00;GBP;USD;1.25\n"))
	rq.Nil(err)
	rq.Equal(2, len(entries))
	rq.Equal(fx.Currency("USD"), entries[0].From)
	rq.Equal(fx.EUR, entries[0].To)
	rq.Equal("0.85", entries[0].Rate.String())
	rq.Equal(date.New(2025, 2, 14), entries[0].Date())
	rq.Equal(fx.Currency("GBP"), entries[1].From)

	// Non-EUR rows are validated too.
	_, err = fx.ParseRatesCsv(strings.NewReader("2025-02-14 00:00:00;GBP;USD;abc\n"))
	rq.NotNil(err)
	rq.Equal("Wrong number format in exchange rates file: abc", err.Error())

	_, err = fx.ParseRatesCsv(strings.NewReader("2025-02-14 00;USD;EUR;0.85\n"))
	rq.NotNil(err)
	rq.Equal("Wrong date format in exchange rates file: 2025-02-14 00", err.Error())

	_, err = fx.ParseRatesCsv(strings.NewReader("2025-02-14 00:00:00;USDEUR;0.85\n"))
	rq.NotNil(err)
	rq.Equal("Wrong line format in exchange rates file: 2025-02-14 00:00:00;USDEUR;0.85", err.Error())
}
