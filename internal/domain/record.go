package domain

import "time"

// Domain is the category a record belongs to. Every record lives in exactly
// one domain and each domain has its own metadata conventions.
type Domain string

const (
	DomainFinancial     Domain = "financial"
	DomainHome          Domain = "home"
	DomainVehicles      Domain = "vehicles"
	DomainAppliances    Domain = "appliances"
	DomainInsurance     Domain = "insurance"
	DomainDocuments     Domain = "documents"
	DomainHealth        Domain = "health"
	DomainMedications   Domain = "medications"
	DomainPets          Domain = "pets"
	DomainCollectibles  Domain = "collectibles"
	DomainSubscriptions Domain = "subscriptions"
	DomainBills         Domain = "bills"
	DomainTasks         Domain = "tasks"
	DomainContacts      Domain = "contacts"
	DomainProviders     Domain = "providers"
	DomainTravel        Domain = "travel"
	DomainEducation     Domain = "education"
	DomainElectronics   Domain = "electronics"
	DomainGarden        Domain = "garden"
	DomainMisc          Domain = "misc"
)

// AllDomains lists every known domain in display order.
var AllDomains = []Domain{
	DomainFinancial, DomainHome, DomainVehicles, DomainAppliances,
	DomainInsurance, DomainDocuments, DomainHealth, DomainMedications,
	DomainPets, DomainCollectibles, DomainSubscriptions, DomainBills,
	DomainTasks, DomainContacts, DomainProviders, DomainTravel,
	DomainEducation, DomainElectronics, DomainGarden, DomainMisc,
}

func ValidDomain(d string) bool {
	for _, known := range AllDomains {
		if Domain(d) == known {
			return true
		}
	}
	return false
}

// Record is one item in a domain. Metadata is the sole carrier of
// domain-specific facts and is intentionally loose; callers go through the
// meta package rather than reading the map directly.
type Record struct {
	ID          string         `json:"id"`
	Domain      Domain         `json:"domain"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Snapshot is an immutable view of every domain's merged records, keyed by
// domain. Aggregation reads it and never mutates it.
type Snapshot map[Domain][]Record

// Records returns the record list for a domain, nil when the domain is
// absent. Absent domains contribute zero to every aggregate.
func (s Snapshot) Records(d Domain) []Record {
	if s == nil {
		return nil
	}
	return s[d]
}
