// Package networth combines per-domain value fields with the financial
// domain's asset/liability classification into one cross-domain aggregate.
// Missing or empty domains contribute zero.
package networth

import (
	"github.com/lifeboardhq/lifeboard/internal/classify"
	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/lifeboardhq/lifeboard/internal/meta"
	"github.com/lifeboardhq/lifeboard/internal/money"
)

var valueKeys = []string{
	"value", "estimatedValue", "estimated_value", "currentValue",
	"current_value", "price", "purchasePrice", "purchase_price", "worth",
}

var balanceKeys = []string{"balance", "currentBalance", "current_balance", "value", "amount"}

var loanBalanceKeys = []string{"loanBalance", "loan_balance", "outstandingBalance", "outstanding_balance", "amountOwed", "amount_owed"}

func domainValue(records []domain.Record) float64 {
	total := 0.0
	for _, r := range records {
		total = money.Sum(total, abs(meta.PickNumber(meta.Unwrap(r), valueKeys...)))
	}
	return total
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Compute derives the unified net-worth aggregate from a full snapshot.
func Compute(snapshot domain.Snapshot) domain.NetWorth {
	b := domain.FinancialBreakdown{
		HomeValue:         domainValue(snapshot.Records(domain.DomainHome)),
		VehicleValue:      domainValue(snapshot.Records(domain.DomainVehicles)),
		CollectiblesValue: domainValue(snapshot.Records(domain.DomainCollectibles)),
		MiscValue:         domainValue(snapshot.Records(domain.DomainMisc)),
	}

	loanBalance := 0.0
	for _, r := range snapshot.Records(domain.DomainFinancial) {
		m := meta.Unwrap(r)
		balance := abs(meta.PickNumber(m, balanceKeys...))

		switch {
		case classify.IsLiability(r):
			b.FinancialLiabilities = money.Sum(b.FinancialLiabilities, balance)
		case classify.IsIncome(r):
			b.CashIncome = money.Sum(b.CashIncome, balance)
		case classify.IsAccountLike(r):
			b.FinancialAssets = money.Sum(b.FinancialAssets, balance)
		}

		// Explicitly tagged loan balances count toward liabilities even on
		// records that otherwise classified as assets.
		if !classify.IsLiability(r) {
			loanBalance = money.Sum(loanBalance, abs(meta.PickNumber(m, loanBalanceKeys...)))
		}
	}

	totalAssets := money.Sum(b.FinancialAssets, b.HomeValue, b.VehicleValue, b.CollectiblesValue, b.MiscValue)
	totalLiabilities := money.Sum(b.FinancialLiabilities, loanBalance)

	return domain.NetWorth{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         money.Sum(totalAssets, -totalLiabilities),
		Breakdown:        b,
	}
}
