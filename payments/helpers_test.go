package payments_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	decimal_opt "github.com/RiveriRiv/payments-aggregator/decimal_value"
	"github.com/RiveriRiv/payments-aggregator/fx"
	"github.com/RiveriRiv/payments-aggregator/payments"
)

// Use this instead of require.New when comparing values holding decimals,
// which have no meaningful == .
type CustomRequire struct {
	t       *testing.T
	options cmp.Options
}

func NewCustomRequire(t *testing.T) *CustomRequire {
	return &CustomRequire{t, []cmp.Option{
		cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
		cmp.Comparer(func(a, b decimal_opt.DecimalOpt) bool { return a.Equal(b) }),
	}}
}

func (rq *CustomRequire) Equal(expected, actual interface{}) {
	diff := cmp.Diff(expected, actual, rq.options)
	require.True(rq.t, diff == "", diff)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func plain(d decimal.Decimal) string {
	return decimal_opt.PlainString(d)
}

func eur(s string) decimal_opt.DecimalOpt {
	return decimal_opt.New(dec(s))
}

func mustParsePayments(t *testing.T, lines ...string) []*payments.Payment {
	pmts, err := payments.ParsePaymentsCsv(strings.NewReader(strings.Join(lines, "\n")))
	require.Nil(t, err)
	return pmts
}

func mustRates(t *testing.T, lines ...string) *fx.RateTable {
	entries, err := fx.ParseRatesCsv(strings.NewReader(strings.Join(lines, "\n")))
	require.Nil(t, err)
	return fx.NewRateTable(entries)
}
