package domain

// KPI is one of the four fixed summary facts shown per domain. Value is
// already formatted for display; Icon is a symbolic reference resolved by
// the presentation layer.
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// KPISet is the exact four KPIs a domain always yields. Missing data
// produces zero-valued KPIs, never fewer than four.
type KPISet [4]KPI

// FinancialBreakdown labels where net worth comes from. All buckets are
// non-negative; liabilities are reported unsigned and subtracted explicitly.
type FinancialBreakdown struct {
	FinancialAssets      float64 `json:"financial_assets"`
	FinancialLiabilities float64 `json:"financial_liabilities"`
	HomeValue            float64 `json:"home_value"`
	VehicleValue         float64 `json:"vehicle_value"`
	CollectiblesValue    float64 `json:"collectibles_value"`
	MiscValue            float64 `json:"misc_value"`
	CashIncome           float64 `json:"cash_income"`
}

// NetWorth is the unified cross-domain financial aggregate.
type NetWorth struct {
	TotalAssets      float64            `json:"total_assets"`
	TotalLiabilities float64            `json:"total_liabilities"`
	NetWorth         float64            `json:"net_worth"`
	Breakdown        FinancialBreakdown `json:"breakdown"`
}
