package alerts

import (
	"time"

	"github.com/lifeboardhq/lifeboard/internal/dates"
	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/lifeboardhq/lifeboard/internal/meta"
)

const (
	// Replacement windows as percentages of expected lifespan.
	replacementWindowStart = 80
	replacementCritical    = 95
)

// LifespanProgress returns how far through its expected lifespan a tracked
// asset is, as a percentage clamped to 100 for display.
func LifespanProgress(purchase, now time.Time, lifespanMonths int) float64 {
	if lifespanMonths <= 0 {
		return 0
	}
	progress := float64(dates.MonthsBetween(purchase, now)) / float64(lifespanMonths) * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// lifecycleAlerts emits maintenance and replacement candidates for tracked
// assets (appliances carrying lifecycle metadata).
//
// Maintenance fires when the months since the last maintenance (defaulting
// to the purchase date) reach the maintenance interval, or come within one
// month of it. Replacement fires in the 80-95% lifespan window at medium
// severity and at 95%+ as critical.
func (e *Engine) lifecycleAlerts(snapshot domain.Snapshot, now time.Time) []domain.Alert {
	var out []domain.Alert
	for _, r := range snapshot.Records(domain.DomainAppliances) {
		m := meta.Unwrap(r)

		purchase, ok := meta.PickFirstDate(m, "purchaseDate", "purchase_date")
		if !ok {
			continue
		}

		if interval := int(meta.ParseNumeric(m["maintenanceIntervalMonths"])); interval > 0 {
			last := purchase
			if t, ok := meta.PickFirstDate(m, "lastMaintenanceDate", "last_maintenance_date"); ok {
				last = t
			}
			sinceLast := dates.MonthsBetween(last, now)
			if sinceLast >= interval-1 {
				due := last.AddDate(0, interval, 0)
				daysLeft := dates.DaysUntil(now, due)
				out = append(out, domain.Alert{
					ID:       alertID("maintenance", r.ID, due),
					Title:    title(r, "Appliance"),
					Subtitle: "Maintenance due",
					DaysLeft: daysLeft,
					Priority: severity(daysLeft),
					Category: domain.DomainAppliances,
					Link:     "/appliances",
				})
			}
		}

		lifespan := int(meta.ParseNumeric(m["expectedLifespanMonths"]))
		if lifespan <= 0 {
			continue
		}
		age := dates.MonthsBetween(purchase, now)
		progress := float64(age) / float64(lifespan) * 100
		if progress < replacementWindowStart {
			continue
		}

		endOfLife := purchase.AddDate(0, lifespan, 0)
		daysLeft := dates.DaysUntil(now, endOfLife)
		alert := domain.Alert{
			ID:       alertID("replacement", r.ID, endOfLife),
			Title:    title(r, "Appliance"),
			DaysLeft: daysLeft,
			Category: domain.DomainAppliances,
			Link:     "/appliances",
		}
		if progress >= replacementCritical {
			alert.Subtitle = "Replacement critical"
			alert.Priority = domain.PriorityHigh
		} else {
			alert.Subtitle = "Replacement window"
			alert.Priority = domain.PriorityMedium
		}
		out = append(out, alert)
	}
	return out
}
