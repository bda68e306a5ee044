package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lifeboardhq/lifeboard/internal/domain"
)

type VehicleStore struct {
	db *pgxpool.Pool
}

func NewVehicleStore(db *pgxpool.Pool) *VehicleStore {
	return &VehicleStore{db: db}
}

func (s *VehicleStore) Create(ctx context.Context, v *domain.Vehicle) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO vehicles (name, make, model, year, estimated_value, service_due, next_service_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		v.Name, v.Make, v.VehicleModel, v.Year, v.EstimatedValue, v.ServiceDue, v.NextServiceAt, v.Status,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
}

func (s *VehicleStore) List(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, make, model, year, estimated_value, service_due, next_service_at, status, created_at, updated_at
		 FROM vehicles ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Make, &v.VehicleModel, &v.Year, &v.EstimatedValue, &v.ServiceDue, &v.NextServiceAt, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
