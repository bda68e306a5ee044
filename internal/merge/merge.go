// Package merge reconciles a domain's records when the same logical
// entities exist in both the generic record store and a specialized
// per-domain table. The specialized copy wins; the merge is idempotent and
// never emits two records sharing an id.
package merge

import (
	"time"

	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/lifeboardhq/lifeboard/internal/money"
)

// Records merges the two sources for one domain. Output order is
// specialized records first, then the generic records whose ids are not
// already taken.
func Records(generic, specialized []domain.Record) []domain.Record {
	seen := make(map[string]struct{}, len(specialized))
	out := make([]domain.Record, 0, len(generic)+len(specialized))

	for _, r := range specialized {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	for _, r := range generic {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}

// CostTotals sums cost line items per parent appliance id.
func CostTotals(costs []domain.ApplianceCost) map[string]float64 {
	totals := make(map[string]float64, len(costs))
	for _, c := range costs {
		id := c.ApplianceID.String()
		totals[id] = money.Sum(totals[id], c.Amount)
	}
	return totals
}

// WarrantySummary is the pre-aggregated warranty state for one appliance:
// the single warranty with the latest parseable expiry plus a count of all
// entries.
type WarrantySummary struct {
	Current *domain.ApplianceWarranty
	Count   int
}

// WarrantySummaries groups warranty entries per parent appliance id and
// selects the entry with the maximum expiry date as current. Entries with
// no expiry date count but never become current.
func WarrantySummaries(warranties []domain.ApplianceWarranty) map[string]WarrantySummary {
	out := make(map[string]WarrantySummary)
	for i := range warranties {
		w := warranties[i]
		id := w.ApplianceID.String()
		s := out[id]
		s.Count++
		if w.ExpiresAt != nil {
			if s.Current == nil || s.Current.ExpiresAt == nil || w.ExpiresAt.After(*s.Current.ExpiresAt) {
				s.Current = &warranties[i]
			}
		}
		out[id] = s
	}
	return out
}

// Appliances converts the specialized appliance table into domain records,
// folding each appliance's pre-aggregated child costs and current warranty
// into its metadata. The result feeds Records as the specialized source.
func Appliances(appliances []domain.Appliance, costs []domain.ApplianceCost, warranties []domain.ApplianceWarranty) []domain.Record {
	costTotals := CostTotals(costs)
	warrantyByID := WarrantySummaries(warranties)

	out := make([]domain.Record, 0, len(appliances))
	for _, a := range appliances {
		id := a.ID.String()
		m := map[string]any{
			"brand":           a.Brand,
			"model":           a.Model,
			"purchasePrice":   a.PurchasePrice,
			"maintenanceCost": a.MaintenanceCost,
			"extraCosts":      costTotals[id],
			"totalCost":       money.Sum(a.PurchasePrice, a.MaintenanceCost, costTotals[id]),
		}
		if a.PurchaseDate != nil {
			m["purchaseDate"] = a.PurchaseDate.Format(time.RFC3339)
		}
		if a.LifespanMonths > 0 {
			m["expectedLifespanMonths"] = a.LifespanMonths
		}
		if s, ok := warrantyByID[id]; ok {
			m["warrantyCount"] = s.Count
			if s.Current != nil && s.Current.ExpiresAt != nil {
				m["warrantyExpiry"] = s.Current.ExpiresAt.Format(time.RFC3339)
				if s.Current.Provider != "" {
					m["warrantyProvider"] = s.Current.Provider
				}
			}
		}
		out = append(out, domain.Record{
			ID:        id,
			Domain:    domain.DomainAppliances,
			Title:     a.Name,
			Metadata:  m,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		})
	}
	return out
}

// Vehicles converts the specialized vehicle table into domain records.
func Vehicles(vehicles []domain.Vehicle) []domain.Record {
	out := make([]domain.Record, 0, len(vehicles))
	for _, v := range vehicles {
		m := map[string]any{
			"make":           v.Make,
			"model":          v.VehicleModel,
			"year":           v.Year,
			"estimatedValue": v.EstimatedValue,
			"serviceDue":     v.ServiceDue,
		}
		if v.NextServiceAt != nil {
			m["nextServiceDate"] = v.NextServiceAt.Format(time.RFC3339)
		}
		if v.Status != "" {
			m["status"] = v.Status
		}
		out = append(out, domain.Record{
			ID:        v.ID.String(),
			Domain:    domain.DomainVehicles,
			Title:     v.Name,
			Metadata:  m,
			CreatedAt: v.CreatedAt,
			UpdatedAt: v.UpdatedAt,
		})
	}
	return out
}

// Documents converts the specialized document table into domain records.
func Documents(docs []domain.Document) []domain.Record {
	out := make([]domain.Record, 0, len(docs))
	for _, d := range docs {
		m := map[string]any{
			"kind":     d.Kind,
			"external": d.External,
		}
		if d.Status != "" {
			m["status"] = d.Status
		}
		if d.ExpiresAt != nil {
			m["expiryDate"] = d.ExpiresAt.Format(time.RFC3339)
		}
		out = append(out, domain.Record{
			ID:        d.ID.String(),
			Domain:    domain.DomainDocuments,
			Title:     d.Name,
			Metadata:  m,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		})
	}
	return out
}

// Providers converts the specialized service-provider table into domain
// records, folding per-provider payment totals into metadata.
func Providers(providers []domain.ServiceProvider, payments []domain.ProviderPayment) []domain.Record {
	paid := make(map[string]float64, len(payments))
	lastPaid := make(map[string]time.Time, len(payments))
	for _, p := range payments {
		id := p.ProviderID.String()
		paid[id] = money.Sum(paid[id], p.Amount)
		if p.PaidAt.After(lastPaid[id]) {
			lastPaid[id] = p.PaidAt
		}
	}

	out := make([]domain.Record, 0, len(providers))
	for _, p := range providers {
		id := p.ID.String()
		m := map[string]any{
			"service":   p.Service,
			"totalPaid": paid[id],
		}
		if last, ok := lastPaid[id]; ok && !last.IsZero() {
			m["lastPaymentDate"] = last.Format(time.RFC3339)
		}
		out = append(out, domain.Record{
			ID:        id,
			Domain:    domain.DomainProviders,
			Title:     p.Name,
			Metadata:  m,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return out
}
