package domain

import (
	"context"

	"github.com/google/uuid"
)

// RecordStore is the generic persistent store collaborator. Fetch failures
// are logged by callers and treated as an empty collection; nothing in the
// aggregation pipeline propagates them.
type RecordStore interface {
	Create(ctx context.Context, r *Record) error
	GetByID(ctx context.Context, domain Domain, id string) (*Record, error)
	ListByDomain(ctx context.Context, domain Domain) ([]Record, error)
	Update(ctx context.Context, r *Record) error
	Delete(ctx context.Context, domain Domain, id string) error
}

// ApplianceStore is the specialized appliances table with its cost and
// warranty child tables.
type ApplianceStore interface {
	Create(ctx context.Context, a *Appliance) error
	List(ctx context.Context) ([]Appliance, error)
	ListCosts(ctx context.Context) ([]ApplianceCost, error)
	ListWarranties(ctx context.Context) ([]ApplianceWarranty, error)
	AddCost(ctx context.Context, c *ApplianceCost) error
	AddWarranty(ctx context.Context, w *ApplianceWarranty) error
}

type VehicleStore interface {
	Create(ctx context.Context, v *Vehicle) error
	List(ctx context.Context) ([]Vehicle, error)
}

type DocumentStore interface {
	Create(ctx context.Context, d *Document) error
	List(ctx context.Context) ([]Document, error)
	// ListExternal returns only externally-sourced documents; the refresh
	// poller re-reads this slice on a fixed interval.
	ListExternal(ctx context.Context) ([]Document, error)
}

type ProviderStore interface {
	Create(ctx context.Context, p *ServiceProvider) error
	List(ctx context.Context) ([]ServiceProvider, error)
	ListPayments(ctx context.Context) ([]ProviderPayment, error)
	AddPayment(ctx context.Context, payment *ProviderPayment) error
}

// DismissalStore round-trips the set of alert ids the user has
// acknowledged. Writes are last-write-wins; concurrent writers from
// multiple devices are not serialized and that race is accepted.
type DismissalStore interface {
	Get(ctx context.Context) (map[string]struct{}, error)
	Set(ctx context.Context, ids map[string]struct{}) error
}

// NewID returns a store-assigned record id.
func NewID() string {
	return uuid.NewString()
}
