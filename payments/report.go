package payments

import (
	"github.com/shopspring/decimal"

	"github.com/RiveriRiv/payments-aggregator/date"
	decimal_opt "github.com/RiveriRiv/payments-aggregator/decimal_value"
	"github.com/RiveriRiv/payments-aggregator/fx"
	"github.com/RiveriRiv/payments-aggregator/util"
)

// DailyReport accumulates the statistics of every payment on one date.
type DailyReport struct {
	Date date.Date

	eurValues       []decimal.Decimal
	companyBalances map[string]decimal.Decimal
	currencySums    map[fx.Currency]decimal.Decimal
	// Sum of |EUR value| over convertible payments. Only shown when
	// notAvailableInEUR is empty.
	volume            decimal.Decimal
	notAvailableInEUR *util.Set[string]
}

func NewDailyReport(d date.Date) *DailyReport {
	return &DailyReport{
		Date:              d,
		companyBalances:   make(map[string]decimal.Decimal),
		currencySums:      make(map[fx.Currency]decimal.Decimal),
		volume:            decimal.Zero,
		notAvailableInEUR: util.NewSet[string](),
	}
}

func mergeSum[K comparable](m map[K]decimal.Decimal, key K, val decimal.Decimal) {
	if cur, ok := m[key]; ok {
		m[key] = cur.Add(val)
	} else {
		m[key] = val
	}
}

// AddPayment folds p into the report. amountInEUR is p's converted amount, or
// Null if p could not be converted on its date.
func (r *DailyReport) AddPayment(p *Payment, amountInEUR decimal_opt.DecimalOpt) {
	mergeSum(r.currencySums, p.Currency, p.Amount)

	if eur, ok := amountInEUR.Get(); ok {
		r.eurValues = append(r.eurValues, eur)
		mergeSum(r.companyBalances, p.Company, eur)
		r.volume = r.volume.Add(eur.Abs())
	} else {
		r.notAvailableInEUR.Add(p.Company)
	}
}

// HighestEURValue is zero when no payment on the date was convertible.
func (r *DailyReport) HighestEURValue() decimal.Decimal {
	if len(r.eurValues) == 0 {
		return decimal.Zero
	}
	highest := r.eurValues[0]
	for _, v := range r.eurValues[1:] {
		if v.GreaterThan(highest) {
			highest = v
		}
	}
	return highest
}

// LowestEURValue is zero when no payment on the date was convertible.
func (r *DailyReport) LowestEURValue() decimal.Decimal {
	if len(r.eurValues) == 0 {
		return decimal.Zero
	}
	lowest := r.eurValues[0]
	for _, v := range r.eurValues[1:] {
		if v.LessThan(lowest) {
			lowest = v
		}
	}
	return lowest
}

func (r *DailyReport) AllPaymentsConvertible() bool {
	return r.notAvailableInEUR.Len() == 0
}

// VolumeInEUR is Null unless every payment on the date was convertible.
func (r *DailyReport) VolumeInEUR() decimal_opt.DecimalOpt {
	if !r.AllPaymentsConvertible() {
		return decimal_opt.Null
	}
	return decimal_opt.New(r.volume)
}

// CompanyBalances gives every company seen on the date. A company with any
// unconvertible payment maps to Null, even if its other payments converted.
func (r *DailyReport) CompanyBalances() map[string]decimal_opt.DecimalOpt {
	balances := make(map[string]decimal_opt.DecimalOpt, len(r.companyBalances))
	for company, balance := range r.companyBalances {
		balances[company] = decimal_opt.New(balance)
	}
	for _, company := range r.notAvailableInEUR.Values() {
		balances[company] = decimal_opt.Null
	}
	return balances
}

// CurrencySums are the raw amounts per currency, regardless of conversion.
func (r *DailyReport) CurrencySums() map[fx.Currency]decimal.Decimal {
	sums := make(map[fx.Currency]decimal.Decimal, len(r.currencySums))
	for curr, sum := range r.currencySums {
		sums[curr] = sum
	}
	return sums
}
