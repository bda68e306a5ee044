package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lifeboardhq/lifeboard/internal/domain"
)

// ApplianceStore is the specialized appliance table with cost and warranty
// child tables. Children are fetched whole and pre-aggregated in the merge
// package before the cross-source merge.
type ApplianceStore struct {
	db *pgxpool.Pool
}

func NewApplianceStore(db *pgxpool.Pool) *ApplianceStore {
	return &ApplianceStore{db: db}
}

func (s *ApplianceStore) Create(ctx context.Context, a *domain.Appliance) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO appliances (name, brand, model, purchase_date, purchase_price, maintenance_cost, lifespan_months)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.Brand, a.Model, a.PurchaseDate, a.PurchasePrice, a.MaintenanceCost, a.LifespanMonths,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (s *ApplianceStore) List(ctx context.Context) ([]domain.Appliance, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, brand, model, purchase_date, purchase_price, maintenance_cost, lifespan_months, created_at, updated_at
		 FROM appliances ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Appliance
	for rows.Next() {
		var a domain.Appliance
		if err := rows.Scan(&a.ID, &a.Name, &a.Brand, &a.Model, &a.PurchaseDate, &a.PurchasePrice, &a.MaintenanceCost, &a.LifespanMonths, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *ApplianceStore) ListCosts(ctx context.Context) ([]domain.ApplianceCost, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, appliance_id, description, amount, incurred_at FROM appliance_costs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ApplianceCost
	for rows.Next() {
		var c domain.ApplianceCost
		if err := rows.Scan(&c.ID, &c.ApplianceID, &c.Description, &c.Amount, &c.IncurredAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *ApplianceStore) ListWarranties(ctx context.Context) ([]domain.ApplianceWarranty, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, appliance_id, provider, expires_at FROM appliance_warranties`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ApplianceWarranty
	for rows.Next() {
		var w domain.ApplianceWarranty
		if err := rows.Scan(&w.ID, &w.ApplianceID, &w.Provider, &w.ExpiresAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (s *ApplianceStore) AddCost(ctx context.Context, c *domain.ApplianceCost) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO appliance_costs (appliance_id, description, amount, incurred_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		c.ApplianceID, c.Description, c.Amount, c.IncurredAt,
	).Scan(&c.ID)
}

func (s *ApplianceStore) AddWarranty(ctx context.Context, w *domain.ApplianceWarranty) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO appliance_warranties (appliance_id, provider, expires_at)
		 VALUES ($1, $2, $3) RETURNING id`,
		w.ApplianceID, w.Provider, w.ExpiresAt,
	).Scan(&w.ID)
}
