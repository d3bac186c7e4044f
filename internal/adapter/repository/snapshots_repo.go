package repository

import (
	"context"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// SnapshotsRepo persists one resume snapshot per user. A nil pool is
// tolerated: the service stays usable without a database, persistence is
// simply skipped.
type SnapshotsRepo struct {
	pool *pgxpool.Pool
}

func NewSnapshotsRepo(pool *pgxpool.Pool) *SnapshotsRepo {
	return &SnapshotsRepo{pool: pool}
}

// Save upserts the user's snapshot. Last write wins.
func (r *SnapshotsRepo) Save(ctx context.Context, s *domain.Snapshot) error {
	if r.pool == nil {
		return nil
	}
	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	_, err := r.pool.Exec(ctx, `INSERT INTO resume_snapshots (user_id, document, created_at, updated_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (user_id) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		s.UserID, []byte(s.Document), s.CreatedAt, s.UpdatedAt)
	return err
}

// Load returns the user's snapshot, or (nil, nil) when none exists or no
// database is configured.
func (r *SnapshotsRepo) Load(ctx context.Context, userID uuid.UUID) (*domain.Snapshot, error) {
	if r.pool == nil {
		return nil, nil
	}
	s := &domain.Snapshot{UserID: userID}
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT document, created_at, updated_at FROM resume_snapshots WHERE user_id = $1`,
		userID).Scan(&doc, &s.CreatedAt, &s.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.Document = doc
	return s, nil
}
