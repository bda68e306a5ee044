// Package kpi derives the four summary facts each domain shows on its
// dashboard tile. Every calculator is pure over (records, now), tolerates
// empty or malformed input, and always yields exactly four KPIs.
package kpi

import (
	"strconv"
	"time"

	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/lifeboardhq/lifeboard/internal/meta"
	"github.com/lifeboardhq/lifeboard/internal/money"
)

// SoonWindow is the "within the next 30 days" horizon shared by warranty,
// expiry, and due-date KPIs.
const SoonWindow = 30 * 24 * time.Hour

type calculator func(records []domain.Record, now time.Time) domain.KPISet

var calculators = map[domain.Domain]calculator{
	domain.DomainAppliances:    appliancesKPIs,
	domain.DomainFinancial:     financialKPIs,
	domain.DomainInsurance:     expiryTrackerKPIs("Policies", "shield"),
	domain.DomainDocuments:     expiryTrackerKPIs("Documents", "file"),
	domain.DomainVehicles:      vehiclesKPIs,
	domain.DomainSubscriptions: subscriptionsKPIs,
	domain.DomainBills:         billsKPIs,
	domain.DomainTasks:         tasksKPIs,
	domain.DomainMedications:   medicationsKPIs,
	domain.DomainContacts:      contactsKPIs,
	domain.DomainPets:          petsKPIs,
	domain.DomainCollectibles:  valuedCollectionKPIs("Items", "gem"),
	domain.DomainHome:          homeKPIs,
	domain.DomainElectronics:   valuedCollectionKPIs("Devices", "cpu"),
	domain.DomainGarden:        maintenanceCollectionKPIs("Plants", "leaf"),
	domain.DomainProviders:     providersKPIs,
}

// Compute returns the KPI set for one domain. Domains without a bespoke
// calculator fall back to the generic collection summary.
func Compute(d domain.Domain, records []domain.Record, now time.Time) domain.KPISet {
	if calc, ok := calculators[d]; ok {
		return calc(records, now)
	}
	return genericKPIs(records, now)
}

// valueKeys are the ordered candidates for "what is this thing worth".
var valueKeys = []string{
	"value", "estimatedValue", "estimated_value", "currentValue",
	"current_value", "price", "purchasePrice", "purchase_price",
	"amount", "worth", "balance",
}

var dueKeys = []string{
	"dueDate", "due_date", "due", "nextDueDate", "next_due_date", "deadline",
}

func count(n int) string {
	return strconv.Itoa(n)
}

func totalValue(records []domain.Record) float64 {
	total := 0.0
	for _, r := range records {
		total = money.Sum(total, meta.PickNumber(meta.Unwrap(r), valueKeys...))
	}
	return total
}

// genericKPIs summarizes domains without bespoke logic: size, total value,
// recent additions, and how many carry any metadata at all.
func genericKPIs(records []domain.Record, now time.Time) domain.KPISet {
	recent := 0
	withDetails := 0
	for _, r := range records {
		if now.Sub(r.CreatedAt) <= SoonWindow {
			recent++
		}
		if len(meta.Unwrap(r)) > 0 {
			withDetails++
		}
	}
	return domain.KPISet{
		{Label: "Total", Value: count(len(records)), Icon: "list"},
		{Label: "Total Value", Value: money.Format(totalValue(records)), Icon: "dollar"},
		{Label: "Added This Month", Value: count(recent), Icon: "plus"},
		{Label: "With Details", Value: count(withDetails), Icon: "info"},
	}
}
