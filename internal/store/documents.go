package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lifeboardhq/lifeboard/internal/domain"
)

type DocumentStore struct {
	db *pgxpool.Pool
}

func NewDocumentStore(db *pgxpool.Pool) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) Create(ctx context.Context, d *domain.Document) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO documents (name, kind, status, expires_at, external)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		d.Name, d.Kind, d.Status, d.ExpiresAt, d.External,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (s *DocumentStore) List(ctx context.Context) ([]domain.Document, error) {
	return s.list(ctx, `SELECT id, name, kind, status, expires_at, external, created_at, updated_at
		 FROM documents ORDER BY created_at`)
}

func (s *DocumentStore) ListExternal(ctx context.Context) ([]domain.Document, error) {
	return s.list(ctx, `SELECT id, name, kind, status, expires_at, external, created_at, updated_at
		 FROM documents WHERE external ORDER BY created_at`)
}

func (s *DocumentStore) list(ctx context.Context, query string) ([]domain.Document, error) {
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.Name, &d.Kind, &d.Status, &d.ExpiresAt, &d.External, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
