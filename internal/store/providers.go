package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lifeboardhq/lifeboard/internal/domain"
)

type ProviderStore struct {
	db *pgxpool.Pool
}

func NewProviderStore(db *pgxpool.Pool) *ProviderStore {
	return &ProviderStore{db: db}
}

func (s *ProviderStore) Create(ctx context.Context, p *domain.ServiceProvider) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO service_providers (name, service)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		p.Name, p.Service,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (s *ProviderStore) List(ctx context.Context) ([]domain.ServiceProvider, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, service, created_at, updated_at FROM service_providers ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ServiceProvider
	for rows.Next() {
		var p domain.ServiceProvider
		if err := rows.Scan(&p.ID, &p.Name, &p.Service, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *ProviderStore) ListPayments(ctx context.Context) ([]domain.ProviderPayment, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, provider_id, amount, paid_at FROM provider_payments`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ProviderPayment
	for rows.Next() {
		var p domain.ProviderPayment
		if err := rows.Scan(&p.ID, &p.ProviderID, &p.Amount, &p.PaidAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *ProviderStore) AddPayment(ctx context.Context, payment *domain.ProviderPayment) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO provider_payments (provider_id, amount, paid_at)
		 VALUES ($1, $2, $3) RETURNING id`,
		payment.ProviderID, payment.Amount, payment.PaidAt,
	).Scan(&payment.ID)
}
