package domain

import (
	"time"

	"github.com/google/uuid"
)

// Specialized tables are stricter-schema secondary sources. When the same
// logical entity also exists in the generic record store, the specialized
// copy wins (see the merge package).

type Appliance struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Brand           string     `json:"brand,omitempty"`
	Model           string     `json:"model,omitempty"`
	PurchaseDate    *time.Time `json:"purchase_date,omitempty"`
	PurchasePrice   float64    `json:"purchase_price"`
	MaintenanceCost float64    `json:"maintenance_cost"`
	LifespanMonths  int        `json:"lifespan_months,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ApplianceCost is a child cost line item attached to one appliance.
type ApplianceCost struct {
	ID          uuid.UUID `json:"id"`
	ApplianceID uuid.UUID `json:"appliance_id"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	IncurredAt  time.Time `json:"incurred_at"`
}

// ApplianceWarranty is a child warranty entry attached to one appliance.
type ApplianceWarranty struct {
	ID          uuid.UUID  `json:"id"`
	ApplianceID uuid.UUID  `json:"appliance_id"`
	Provider    string     `json:"provider,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

type Vehicle struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Make           string     `json:"make,omitempty"`
	VehicleModel   string     `json:"model,omitempty"`
	Year           int        `json:"year,omitempty"`
	EstimatedValue float64    `json:"estimated_value"`
	ServiceDue     bool       `json:"service_due"`
	NextServiceAt  *time.Time `json:"next_service_at,omitempty"`
	Status         string     `json:"status,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type Document struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind,omitempty"`
	Status    string     `json:"status,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	External  bool       `json:"external"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type ServiceProvider struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Service   string    `json:"service,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProviderPayment is a child payment attached to one service provider.
type ProviderPayment struct {
	ID         uuid.UUID `json:"id"`
	ProviderID uuid.UUID `json:"provider_id"`
	Amount     float64   `json:"amount"`
	PaidAt     time.Time `json:"paid_at"`
}
