package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/cactuspool/pickem/models"
)

var (
	ErrGroupPickNotFound    = errors.New("group pick not found")
	ErrGroupPickTeamInvalid = errors.New("group pick references an invalid team or group")
)

type GroupPickRepository interface {
	// Upsert stores the pick, replacing any prior pick by the same user for
	// the same group. The unique (user_id, group_id) index makes "at most
	// one live pick" a storage invariant, not a convention.
	Upsert(ctx context.Context, pick *models.GroupPick) error
	GetByUserAndGroup(ctx context.Context, userID string, groupID int) (*models.GroupPick, error)
	ListByUser(ctx context.Context, userID string) ([]*models.GroupPick, error)
}

type postgresGroupPickRepository struct {
	db *sql.DB
}

func NewPostgresGroupPickRepository(db *sql.DB) GroupPickRepository {
	return &postgresGroupPickRepository{db: db}
}

func (r *postgresGroupPickRepository) Upsert(ctx context.Context, pick *models.GroupPick) error {
	query := `
		INSERT INTO group_picks (user_id, group_id, first_seed_id, second_seed_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, group_id) DO UPDATE
			SET first_seed_id = EXCLUDED.first_seed_id,
			    second_seed_id = EXCLUDED.second_seed_id
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		pick.UserID, pick.GroupID, pick.FirstSeedID, pick.SecondSeedID,
	).Scan(&pick.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
			return ErrGroupPickTeamInvalid
		}
		return fmt.Errorf("failed to upsert group pick for user %s, group %d: %w", pick.UserID, pick.GroupID, err)
	}
	return nil
}

func (r *postgresGroupPickRepository) GetByUserAndGroup(ctx context.Context, userID string, groupID int) (*models.GroupPick, error) {
	query := `
		SELECT id, user_id, group_id, first_seed_id, second_seed_id
		FROM group_picks
		WHERE user_id = $1 AND group_id = $2`

	pick := &models.GroupPick{}
	err := r.db.QueryRowContext(ctx, query, userID, groupID).Scan(
		&pick.ID, &pick.UserID, &pick.GroupID, &pick.FirstSeedID, &pick.SecondSeedID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupPickNotFound
		}
		return nil, fmt.Errorf("failed to scan group pick: %w", err)
	}
	return pick, nil
}

func (r *postgresGroupPickRepository) ListByUser(ctx context.Context, userID string) ([]*models.GroupPick, error) {
	query := `
		SELECT id, user_id, group_id, first_seed_id, second_seed_id
		FROM group_picks
		WHERE user_id = $1
		ORDER BY group_id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group picks for user %s: %w", userID, err)
	}
	defer rows.Close()

	picks := make([]*models.GroupPick, 0)
	for rows.Next() {
		pick := &models.GroupPick{}
		if err := rows.Scan(&pick.ID, &pick.UserID, &pick.GroupID, &pick.FirstSeedID, &pick.SecondSeedID); err != nil {
			return nil, fmt.Errorf("failed to scan group pick row: %w", err)
		}
		picks = append(picks, pick)
	}
	return picks, rows.Err()
}
