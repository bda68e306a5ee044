package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lifeboardhq/lifeboard/internal/domain"
)

// RecordStore is the generic record table: one row per item, metadata as
// jsonb carrying whatever shape the domain uses.
type RecordStore struct {
	db *pgxpool.Pool
}

func NewRecordStore(db *pgxpool.Pool) *RecordStore {
	return &RecordStore{db: db}
}

func (s *RecordStore) Create(ctx context.Context, r *domain.Record) error {
	if r.ID == "" {
		r.ID = domain.NewID()
	}
	return s.db.QueryRow(ctx,
		`INSERT INTO records (id, domain, title, description, metadata)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		r.ID, r.Domain, r.Title, r.Description, r.Metadata,
	).Scan(&r.CreatedAt, &r.UpdatedAt)
}

func (s *RecordStore) GetByID(ctx context.Context, d domain.Domain, id string) (*domain.Record, error) {
	r := &domain.Record{}
	err := s.db.QueryRow(ctx,
		`SELECT id, domain, title, description, metadata, created_at, updated_at
		 FROM records WHERE domain = $1 AND id = $2`,
		d, id,
	).Scan(&r.ID, &r.Domain, &r.Title, &r.Description, &r.Metadata, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *RecordStore) ListByDomain(ctx context.Context, d domain.Domain) ([]domain.Record, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, domain, title, description, metadata, created_at, updated_at
		 FROM records WHERE domain = $1
		 ORDER BY created_at`,
		d,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Record
	for rows.Next() {
		var r domain.Record
		if err := rows.Scan(&r.ID, &r.Domain, &r.Title, &r.Description, &r.Metadata, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *RecordStore) Update(ctx context.Context, r *domain.Record) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE records SET title = $3, description = $4, metadata = $5, updated_at = NOW()
		 WHERE domain = $1 AND id = $2`,
		r.Domain, r.ID, r.Title, r.Description, r.Metadata,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RecordStore) Delete(ctx context.Context, d domain.Domain, id string) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM records WHERE domain = $1 AND id = $2`, d, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
