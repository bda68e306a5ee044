package alerts

import (
	"time"

	"github.com/lifeboardhq/lifeboard/internal/classify"
	"github.com/lifeboardhq/lifeboard/internal/dates"
	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/lifeboardhq/lifeboard/internal/meta"
)

var dueKeys = []string{"dueDate", "due_date", "due", "nextDueDate", "next_due_date", "deadline"}

func settled(m map[string]any) bool {
	if meta.HasTruthy(m, "paid", "isPaid", "is_paid", "completed", "done") {
		return true
	}
	switch meta.PickString(m, "status", "state") {
	case "paid", "Paid", "complete", "completed", "done", "Done":
		return true
	}
	return false
}

func title(r domain.Record, fallback string) string {
	if r.Title != "" {
		return r.Title
	}
	return fallback
}

// dueDateAlerts is the shared shape for bills and tasks: anything unsettled
// with a due date inside the 30-day window, or already overdue.
func (e *Engine) dueDateAlerts(records []domain.Record, now time.Time, kind string, category domain.Domain, subtitle string) []domain.Alert {
	var out []domain.Alert
	for _, r := range records {
		m := meta.Unwrap(r)
		if settled(m) {
			continue
		}
		due, ok := meta.PickFirstDate(m, dueKeys...)
		if !ok {
			continue
		}
		daysLeft := dates.DaysUntil(now, due)
		if daysLeft > 30 {
			continue
		}
		out = append(out, domain.Alert{
			ID:       alertID(kind, r.ID, due),
			Title:    title(r, subtitle),
			Subtitle: subtitle,
			DaysLeft: daysLeft,
			Priority: severity(daysLeft),
			Category: category,
			Link:     "/" + string(category),
		})
	}
	return out
}

func (e *Engine) billAlerts(snapshot domain.Snapshot, now time.Time) []domain.Alert {
	return e.dueDateAlerts(snapshot.Records(domain.DomainBills), now, "bill", domain.DomainBills, "Bill due")
}

func (e *Engine) taskAlerts(snapshot domain.Snapshot, now time.Time) []domain.Alert {
	return e.dueDateAlerts(snapshot.Records(domain.DomainTasks), now, "task", domain.DomainTasks, "Task due")
}

var refillKeys = []string{"refillDate", "refill_date", "nextRefill", "next_refill", "refillDue", "refill_due"}

func (e *Engine) medicationAlerts(snapshot domain.Snapshot, now time.Time) []domain.Alert {
	var out []domain.Alert
	for _, r := range snapshot.Records(domain.DomainMedications) {
		refill, ok := meta.PickFirstDate(meta.Unwrap(r), refillKeys...)
		if !ok {
			continue
		}
		daysLeft := dates.DaysUntil(now, refill)
		if daysLeft > 30 {
			continue
		}
		out = append(out, domain.Alert{
			ID:       alertID("refill", r.ID, refill),
			Title:    title(r, "Medication"),
			Subtitle: "Refill due",
			DaysLeft: daysLeft,
			Priority: severity(daysLeft),
			Category: domain.DomainMedications,
			Link:     "/medications",
		})
	}
	return out
}

// expiryAlerts is the shared shape for documents and insurance policies:
// include anything expiring inside the document look-ahead horizon.
func (e *Engine) expiryAlerts(records []domain.Record, now time.Time, kind string, category domain.Domain, subtitle string) []domain.Alert {
	lookahead := e.DocumentLookaheadDays
	if lookahead <= 0 {
		lookahead = DefaultDocumentLookaheadDays
	}

	var out []domain.Alert
	for _, r := range records {
		exp, ok := classify.ExpiryDate(r)
		if !ok {
			continue
		}
		daysLeft := dates.DaysUntil(now, exp)
		if daysLeft > lookahead {
			continue
		}
		out = append(out, domain.Alert{
			ID:       alertID(kind, r.ID, exp),
			Title:    title(r, subtitle),
			Subtitle: subtitle,
			DaysLeft: daysLeft,
			Priority: severity(daysLeft),
			Category: category,
			Link:     "/" + string(category),
		})
	}
	return out
}

func (e *Engine) documentAlerts(snapshot domain.Snapshot, now time.Time) []domain.Alert {
	return e.expiryAlerts(snapshot.Records(domain.DomainDocuments), now, "document", domain.DomainDocuments, "Document expiring")
}

func (e *Engine) insuranceAlerts(snapshot domain.Snapshot, now time.Time) []domain.Alert {
	return e.expiryAlerts(snapshot.Records(domain.DomainInsurance), now, "policy", domain.DomainInsurance, "Policy expiring")
}

var warrantyKeys = []string{"warrantyExpiry", "warranty_expiry", "warrantyExpiryDate", "warrantyEndDate", "warranty_end_date"}

func (e *Engine) warrantyAlerts(snapshot domain.Snapshot, now time.Time) []domain.Alert {
	var out []domain.Alert
	for _, r := range snapshot.Records(domain.DomainAppliances) {
		exp, ok := meta.PickFirstDate(meta.Unwrap(r), warrantyKeys...)
		if !ok {
			continue
		}
		daysLeft := dates.DaysUntil(now, exp)
		// Expired warranties are stale facts, not actionable ones.
		if daysLeft < 0 || daysLeft > 30 {
			continue
		}
		out = append(out, domain.Alert{
			ID:       alertID("warranty", r.ID, exp),
			Title:    title(r, "Appliance"),
			Subtitle: "Warranty expiring",
			DaysLeft: daysLeft,
			Priority: severity(daysLeft),
			Category: domain.DomainAppliances,
			Link:     "/appliances",
		})
	}
	return out
}

var birthdayKeys = []string{"birthday", "birthDate", "birth_date", "dob"}
var anniversaryKeys = []string{"anniversary", "anniversaryDate", "anniversary_date"}

// annualAlerts projects an annual event into the current or next year and
// includes it inside the per-person reminder lead (metadata override, else
// the engine default).
func (e *Engine) annualAlerts(records []domain.Record, now time.Time, kind string, dateKeys []string, defaultLead int, subtitle string) []domain.Alert {
	var out []domain.Alert
	for _, r := range records {
		m := meta.Unwrap(r)
		event, ok := meta.PickFirstDate(m, dateKeys...)
		if !ok {
			continue
		}
		lead := defaultLead
		if override := meta.ParseNumeric(m["reminderLeadDays"]); override > 0 {
			lead = int(override)
		}
		next := dates.NextAnnual(event, now)
		daysLeft := dates.DaysUntil(now, next)
		if daysLeft > lead {
			continue
		}
		out = append(out, domain.Alert{
			ID:       alertID(kind, r.ID, next),
			Title:    title(r, subtitle),
			Subtitle: subtitle,
			DaysLeft: daysLeft,
			Priority: severity(daysLeft),
			Category: domain.DomainContacts,
			Link:     "/contacts",
		})
	}
	return out
}

func (e *Engine) birthdayAlerts(snapshot domain.Snapshot, now time.Time) []domain.Alert {
	return e.annualAlerts(snapshot.Records(domain.DomainContacts), now, "birthday", birthdayKeys, e.BirthdayLeadDays, "Birthday")
}

func (e *Engine) anniversaryAlerts(snapshot domain.Snapshot, now time.Time) []domain.Alert {
	return e.annualAlerts(snapshot.Records(domain.DomainContacts), now, "anniversary", anniversaryKeys, e.AnniversaryLeadDays, "Anniversary")
}

func (e *Engine) vehicleAlerts(snapshot domain.Snapshot, now time.Time) []domain.Alert {
	var out []domain.Alert
	for _, r := range snapshot.Records(domain.DomainVehicles) {
		if !classify.ServiceDue(r, now) {
			continue
		}
		m := meta.Unwrap(r)
		daysLeft := 0
		// Flag-only detections get a fixed sentinel trigger so the id stays
		// stable across regenerations.
		var trigger time.Time
		if next, ok := meta.PickFirstDate(m, "nextServiceDate", "next_service_date", "nextService", "serviceDate", "service_date"); ok {
			daysLeft = dates.DaysUntil(now, next)
			trigger = next
		}
		out = append(out, domain.Alert{
			ID:       alertID("service", r.ID, trigger),
			Title:    title(r, "Vehicle"),
			Subtitle: "Service due",
			DaysLeft: daysLeft,
			Priority: severity(daysLeft),
			Category: domain.DomainVehicles,
			Link:     "/vehicles",
		})
	}
	return out
}
