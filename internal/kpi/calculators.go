package kpi

import (
	"time"

	"github.com/lifeboardhq/lifeboard/internal/classify"
	"github.com/lifeboardhq/lifeboard/internal/dates"
	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/lifeboardhq/lifeboard/internal/meta"
	"github.com/lifeboardhq/lifeboard/internal/money"
)

var warrantyKeys = []string{"warrantyExpiry", "warranty_expiry", "warrantyExpiryDate", "warrantyEndDate", "warranty_end_date"}

func appliancesKPIs(records []domain.Record, now time.Time) domain.KPISet {
	totalCost := 0.0
	underWarranty := 0
	expiringSoon := 0

	for _, r := range records {
		m := meta.Unwrap(r)

		cost := meta.ParseNumeric(m["totalCost"])
		if cost == 0 {
			cost = money.Sum(
				meta.PickNumber(m, "purchasePrice", "purchase_price", "price"),
				meta.ParseNumeric(m["maintenanceCost"]),
				meta.ParseNumeric(m["extraCosts"]),
			)
		}
		totalCost = money.Sum(totalCost, cost)

		if exp, ok := meta.PickFirstDate(m, warrantyKeys...); ok && exp.After(now) {
			underWarranty++
			if exp.Sub(now) <= SoonWindow {
				expiringSoon++
			}
		}
	}

	return domain.KPISet{
		{Label: "Total Invested", Value: money.Format(totalCost), Icon: "dollar"},
		{Label: "Under Warranty", Value: count(underWarranty), Icon: "shield"},
		{Label: "Warranty Expiring", Value: count(expiringSoon), Icon: "clock"},
		{Label: "Total Cost", Value: money.Format(totalCost), Icon: "receipt"},
	}
}

var balanceKeys = []string{"balance", "currentBalance", "current_balance", "value", "amount"}

func financialKPIs(records []domain.Record, now time.Time) domain.KPISet {
	assets := 0.0
	liabilities := 0.0
	accounts := 0

	for _, r := range records {
		balance := meta.PickNumber(meta.Unwrap(r), balanceKeys...)
		switch {
		case classify.IsLiability(r):
			liabilities = money.Sum(liabilities, abs(balance))
		case classify.IsAccountLike(r):
			assets = money.Sum(assets, abs(balance))
			accounts++
		}
	}

	return domain.KPISet{
		{Label: "Accounts", Value: count(accounts), Icon: "bank"},
		{Label: "Assets", Value: money.FormatCompact(assets), Icon: "trending-up"},
		{Label: "Liabilities", Value: money.FormatCompact(liabilities), Icon: "trending-down"},
		{Label: "Net Worth", Value: money.FormatCompact(money.Sum(assets, -liabilities)), Icon: "wallet"},
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// expiryTrackerKPIs builds the status-bucket calculator shared by
// insurance and documents: both are trackers over things that expire.
func expiryTrackerKPIs(noun, icon string) calculator {
	return func(records []domain.Record, now time.Time) domain.KPISet {
		var active, expiring, expired int
		for _, r := range records {
			switch classify.Status(r, now) {
			case classify.StatusExpired:
				expired++
			case classify.StatusExpiring:
				expiring++
			default:
				active++
			}
		}
		return domain.KPISet{
			{Label: noun, Value: count(len(records)), Icon: icon},
			{Label: "Active", Value: count(active), Icon: "check"},
			{Label: "Expiring Soon", Value: count(expiring), Icon: "clock"},
			{Label: "Expired", Value: count(expired), Icon: "alert"},
		}
	}
}

func vehiclesKPIs(records []domain.Record, now time.Time) domain.KPISet {
	value := 0.0
	due := 0
	for _, r := range records {
		value = money.Sum(value, meta.PickNumber(meta.Unwrap(r), valueKeys...))
		if classify.ServiceDue(r, now) {
			due++
		}
	}
	return domain.KPISet{
		{Label: "Vehicles", Value: count(len(records)), Icon: "car"},
		{Label: "Est. Value", Value: money.FormatCompact(value), Icon: "dollar"},
		{Label: "Service Due", Value: count(due), Icon: "wrench"},
		{Label: "Up to Date", Value: count(len(records) - due), Icon: "check"},
	}
}

var renewalKeys = []string{"renewalDate", "renewal_date", "nextBillingDate", "next_billing_date", "nextPayment", "next_payment"}

func subscriptionsKPIs(records []domain.Record, now time.Time) domain.KPISet {
	monthly := 0.0
	renewingSoon := 0
	subs := 0
	for _, r := range records {
		if !classify.IsSubscription(r) {
			continue
		}
		subs++
		monthly = money.Sum(monthly, meta.PickNumber(meta.Unwrap(r), "amount", "price", "cost", "monthlyCost", "monthly_cost"))
		if next, ok := meta.PickFirstDate(meta.Unwrap(r), renewalKeys...); ok && next.After(now) && next.Sub(now) <= SoonWindow {
			renewingSoon++
		}
	}
	return domain.KPISet{
		{Label: "Subscriptions", Value: count(subs), Icon: "repeat"},
		{Label: "Monthly Cost", Value: money.Format(monthly), Icon: "dollar"},
		{Label: "Renewing Soon", Value: count(renewingSoon), Icon: "clock"},
		{Label: "Tracked", Value: count(len(records)), Icon: "list"},
	}
}

func isSettled(m map[string]any) bool {
	if meta.HasTruthy(m, "paid", "isPaid", "is_paid", "completed", "done") {
		return true
	}
	switch meta.PickString(m, "status", "state") {
	case "paid", "Paid", "complete", "completed", "done", "Done":
		return true
	}
	return false
}

func billsKPIs(records []domain.Record, now time.Time) domain.KPISet {
	var unpaid, dueSoon, overdue int
	owed := 0.0
	for _, r := range records {
		m := meta.Unwrap(r)
		if isSettled(m) {
			continue
		}
		unpaid++
		owed = money.Sum(owed, meta.PickNumber(m, "amount", "amountDue", "amount_due", "balance"))
		if due, ok := meta.PickFirstDate(m, dueKeys...); ok {
			switch d := dates.DaysUntil(now, due); {
			case d < 0:
				overdue++
			case d <= 30:
				dueSoon++
			}
		}
	}
	return domain.KPISet{
		{Label: "Unpaid", Value: count(unpaid), Icon: "receipt"},
		{Label: "Amount Owed", Value: money.Format(owed), Icon: "dollar"},
		{Label: "Due Soon", Value: count(dueSoon), Icon: "clock"},
		{Label: "Overdue", Value: count(overdue), Icon: "alert"},
	}
}

func tasksKPIs(records []domain.Record, now time.Time) domain.KPISet {
	var open, dueSoon, overdue int
	for _, r := range records {
		m := meta.Unwrap(r)
		if isSettled(m) {
			continue
		}
		open++
		if due, ok := meta.PickFirstDate(m, dueKeys...); ok {
			switch d := dates.DaysUntil(now, due); {
			case d < 0:
				overdue++
			case d <= 30:
				dueSoon++
			}
		}
	}
	return domain.KPISet{
		{Label: "Open", Value: count(open), Icon: "circle"},
		{Label: "Due Soon", Value: count(dueSoon), Icon: "clock"},
		{Label: "Overdue", Value: count(overdue), Icon: "alert"},
		{Label: "Total", Value: count(len(records)), Icon: "list"},
	}
}

var refillKeys = []string{"refillDate", "refill_date", "nextRefill", "next_refill", "refillDue", "refill_due"}

func medicationsKPIs(records []domain.Record, now time.Time) domain.KPISet {
	prescriptions := 0
	refillsDue := 0
	for _, r := range records {
		if classify.IsMedication(r) {
			prescriptions++
		}
		if refill, ok := meta.PickFirstDate(meta.Unwrap(r), refillKeys...); ok {
			if dates.DaysUntil(now, refill) <= 7 {
				refillsDue++
			}
		}
	}
	return domain.KPISet{
		{Label: "Medications", Value: count(len(records)), Icon: "pill"},
		{Label: "Prescriptions", Value: count(prescriptions), Icon: "rx"},
		{Label: "Refills Due", Value: count(refillsDue), Icon: "clock"},
		{Label: "Tracked", Value: count(len(records)), Icon: "list"},
	}
}

var birthdayKeys = []string{"birthday", "birthDate", "birth_date", "dob"}
var anniversaryKeys = []string{"anniversary", "anniversaryDate", "anniversary_date"}

func contactsKPIs(records []domain.Record, now time.Time) domain.KPISet {
	withBirthday := 0
	upcoming := 0
	anniversaries := 0
	for _, r := range records {
		m := meta.Unwrap(r)
		if bd, ok := meta.PickFirstDate(m, birthdayKeys...); ok {
			withBirthday++
			if dates.DaysUntil(now, dates.NextAnnual(bd, now)) <= 30 {
				upcoming++
			}
		}
		if _, ok := meta.PickFirstDate(m, anniversaryKeys...); ok {
			anniversaries++
		}
	}
	return domain.KPISet{
		{Label: "People", Value: count(len(records)), Icon: "users"},
		{Label: "Birthdays", Value: count(withBirthday), Icon: "cake"},
		{Label: "This Month", Value: count(upcoming), Icon: "calendar"},
		{Label: "Anniversaries", Value: count(anniversaries), Icon: "heart"},
	}
}

func petsKPIs(records []domain.Record, now time.Time) domain.KPISet {
	checkupsDue := 0
	vaccinesExpiring := 0
	onMeds := 0
	for _, r := range records {
		m := meta.Unwrap(r)
		if next, ok := meta.PickFirstDate(m, "nextVetVisit", "next_vet_visit", "checkupDate", "checkup_date"); ok {
			if next.Sub(now) <= SoonWindow {
				checkupsDue++
			}
		}
		if exp, ok := meta.PickFirstDate(m, "vaccinationExpiry", "vaccination_expiry", "rabiesExpiry"); ok {
			if exp.Sub(now) <= SoonWindow {
				vaccinesExpiring++
			}
		}
		if meta.HasTruthy(m, "medications", "onMedication", "on_medication") {
			onMeds++
		}
	}
	return domain.KPISet{
		{Label: "Pets", Value: count(len(records)), Icon: "paw"},
		{Label: "Checkups Due", Value: count(checkupsDue), Icon: "stethoscope"},
		{Label: "Vaccines Expiring", Value: count(vaccinesExpiring), Icon: "syringe"},
		{Label: "On Medication", Value: count(onMeds), Icon: "pill"},
	}
}

// valuedCollectionKPIs covers collection-style domains where worth is the
// interesting number (collectibles, electronics).
func valuedCollectionKPIs(noun, icon string) calculator {
	return func(records []domain.Record, now time.Time) domain.KPISet {
		total := 0.0
		highest := 0.0
		recent := 0
		for _, r := range records {
			v := meta.PickNumber(meta.Unwrap(r), valueKeys...)
			total = money.Sum(total, v)
			if v > highest {
				highest = v
			}
			if now.Sub(r.CreatedAt) <= SoonWindow {
				recent++
			}
		}
		return domain.KPISet{
			{Label: noun, Value: count(len(records)), Icon: icon},
			{Label: "Total Value", Value: money.Format(total), Icon: "dollar"},
			{Label: "Most Valuable", Value: money.Format(highest), Icon: "star"},
			{Label: "Added This Month", Value: count(recent), Icon: "plus"},
		}
	}
}

// maintenanceCollectionKPIs covers domains tracked mainly for upkeep
// (garden).
func maintenanceCollectionKPIs(noun, icon string) calculator {
	return func(records []domain.Record, now time.Time) domain.KPISet {
		needsCare := 0
		recent := 0
		for _, r := range records {
			if classify.IsMaintenanceTask(r) || meta.HasTruthy(meta.Unwrap(r), "needsCare", "needs_care") {
				needsCare++
			}
			if now.Sub(r.CreatedAt) <= SoonWindow {
				recent++
			}
		}
		return domain.KPISet{
			{Label: noun, Value: count(len(records)), Icon: icon},
			{Label: "Needs Care", Value: count(needsCare), Icon: "alert"},
			{Label: "Added This Month", Value: count(recent), Icon: "plus"},
			{Label: "Healthy", Value: count(len(records) - needsCare), Icon: "check"},
		}
	}
}

func homeKPIs(records []domain.Record, now time.Time) domain.KPISet {
	value := 0.0
	invested := 0.0
	maintenance := 0
	for _, r := range records {
		m := meta.Unwrap(r)
		value = money.Sum(value, meta.PickNumber(m, valueKeys...))
		invested = money.Sum(invested, meta.PickNumber(m, "improvementCost", "improvement_cost", "renovationCost"))
		if classify.IsMaintenanceTask(r) {
			maintenance++
		}
	}
	return domain.KPISet{
		{Label: "Properties", Value: count(len(records) - maintenance), Icon: "home"},
		{Label: "Est. Value", Value: money.FormatCompact(value), Icon: "dollar"},
		{Label: "Maintenance Items", Value: count(maintenance), Icon: "wrench"},
		{Label: "Improvements", Value: money.Format(invested), Icon: "hammer"},
	}
}

func providersKPIs(records []domain.Record, now time.Time) domain.KPISet {
	totalPaid := 0.0
	services := map[string]struct{}{}
	paidThisYear := 0
	for _, r := range records {
		m := meta.Unwrap(r)
		totalPaid = money.Sum(totalPaid, meta.ParseNumeric(m["totalPaid"]))
		if s := meta.PickString(m, "service", "serviceType", "service_type"); s != "" {
			services[s] = struct{}{}
		}
		if last, ok := meta.PickFirstDate(m, "lastPaymentDate", "last_payment_date"); ok && last.Year() == now.Year() {
			paidThisYear++
		}
	}
	return domain.KPISet{
		{Label: "Providers", Value: count(len(records)), Icon: "briefcase"},
		{Label: "Total Paid", Value: money.Format(totalPaid), Icon: "dollar"},
		{Label: "Services", Value: count(len(services)), Icon: "grid"},
		{Label: "Paid This Year", Value: count(paidThisYear), Icon: "calendar"},
	}
}
