package payments

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	decimal_opt "github.com/RiveriRiv/payments-aggregator/decimal_value"
	"github.com/RiveriRiv/payments-aggregator/fx"
	"github.com/RiveriRiv/payments-aggregator/util"
)

type RenderTable struct {
	Header []string
	Rows   [][]string
	Footer []string
	Notes  []string
}

// FormatCompanyBalances renders balances as "{Company A=500, Company B=N.A.}",
// sorted by company.
func FormatCompanyBalances(balances map[string]decimal_opt.DecimalOpt) string {
	parts := make([]string, 0, len(balances))
	for _, company := range util.SortedKeys(balances) {
		parts = append(parts, company+"="+balances[company].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FormatCurrencySums renders sums as "{EUR=1700, GBP=500}", sorted by currency.
func FormatCurrencySums(sums map[fx.Currency]decimal.Decimal) string {
	parts := make([]string, 0, len(sums))
	for _, curr := range util.SortedKeys(sums) {
		parts = append(parts, fmt.Sprintf("%s=%s", curr, decimal_opt.PlainString(sums[curr])))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// SummaryLines is the plain text form of a report, one statistic per line.
func SummaryLines(r *DailyReport) []string {
	return []string{
		"Date: " + r.Date.String(),
		"Highest EUR value: " + decimal_opt.PlainString(r.HighestEURValue()),
		"Lowest EUR value: " + decimal_opt.PlainString(r.LowestEURValue()),
		"Transaction volume in EUR: " + r.VolumeInEUR().String(),
		"Outstanding amounts per company in EUR: " + FormatCompanyBalances(r.CompanyBalances()),
		"Outstanding amounts per currency: " + FormatCurrencySums(r.CurrencySums()),
	}
}

/*
Generates a RenderTable that will render out to this:
| Statistic          | Company | Currency | Value   |
+--------------------+---------+----------+---------+
| Highest            |         | EUR      | 1500    |
| Lowest             |         | EUR      | 200     |
| Volume             |         | EUR      | N.A.    |
| Balance            | Co A    | EUR      | N.A.    |
| Outstanding        |         | GBP      | 500     |
*/
func RenderDailyReportModel(r *DailyReport) *RenderTable {
	table := &RenderTable{}
	table.Header = []string{"Statistic", "Company", "Currency", "Value"}

	eur := string(fx.EUR)
	table.Rows = append(table.Rows,
		[]string{"Highest", "", eur, decimal_opt.PlainString(r.HighestEURValue())},
		[]string{"Lowest", "", eur, decimal_opt.PlainString(r.LowestEURValue())},
		[]string{"Volume", "", eur, r.VolumeInEUR().String()},
	)

	balances := r.CompanyBalances()
	sawNA := false
	for _, company := range util.SortedKeys(balances) {
		bal := balances[company]
		sawNA = sawNA || bal.IsNull
		table.Rows = append(table.Rows, []string{"Balance", company, eur, bal.String()})
	}

	sums := r.CurrencySums()
	for _, curr := range util.SortedKeys(sums) {
		table.Rows = append(table.Rows,
			[]string{"Outstanding", "", string(curr), decimal_opt.PlainString(sums[curr])})
	}

	table.Footer = []string{"Date", "", "", r.Date.String()}

	if sawNA {
		table.Notes = append(table.Notes,
			" N.A. = no exchange rate into EUR for at least one payment on this date")
	}
	return table
}
