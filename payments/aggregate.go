package payments

import (
	"sort"

	"github.com/RiveriRiv/payments-aggregator/date"
	"github.com/RiveriRiv/payments-aggregator/fx"
	"github.com/RiveriRiv/payments-aggregator/log"
	"github.com/RiveriRiv/payments-aggregator/util"
)

// AggregateDailyReports converts every payment with the rates of its own date
// and adds it to that date's report. Only dates with payments get a report.
func AggregateDailyReports(pmts []*Payment, rates *fx.RateTable) map[date.Date]*DailyReport {
	reports := util.NewDefaultMap(NewDailyReport)
	unavailable := 0
	for _, p := range pmts {
		d := p.Date()
		amountInEUR := fx.ConvertToEUR(p.Amount, p.Currency, rates.RatesForDate(d))
		if amountInEUR.IsNull {
			unavailable++
		}
		reports.Get(d).AddPayment(p, amountInEUR)
	}
	log.Tracef("aggregate", "%d payments, %d dates, %d not convertible to EUR",
		len(pmts), reports.Len(), unavailable)
	return reports.EjectMap()
}

// SortedReports orders reports by ascending date.
func SortedReports(reports map[date.Date]*DailyReport) []*DailyReport {
	sorted := make([]*DailyReport, 0, len(reports))
	for _, r := range reports {
		sorted = append(sorted, r)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
