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
	ErrKnockoutPickNotFound    = errors.New("knockout pick not found")
	ErrKnockoutPickExists      = errors.New("knockout pick already submitted for this fixture")
	ErrKnockoutPickTeamInvalid = errors.New("knockout pick references an invalid team or fixture")
)

type KnockoutPickRepository interface {
	// Create stores a new pick. There is deliberately no update path:
	// a second submission for the same fixture fails with
	// ErrKnockoutPickExists via the unique (user_id, knockout_match_id)
	// constraint.
	Create(ctx context.Context, pick *models.KnockoutPick) error
	GetByUserAndMatch(ctx context.Context, userID string, knockoutMatchID int) (*models.KnockoutPick, error)
	ListByUser(ctx context.Context, userID string) ([]*models.KnockoutPick, error)
}

type postgresKnockoutPickRepository struct {
	db *sql.DB
}

func NewPostgresKnockoutPickRepository(db *sql.DB) KnockoutPickRepository {
	return &postgresKnockoutPickRepository{db: db}
}

func (r *postgresKnockoutPickRepository) Create(ctx context.Context, pick *models.KnockoutPick) error {
	query := `
		INSERT INTO knockout_picks (user_id, knockout_match_id, winner_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		pick.UserID, pick.KnockoutMatchID, pick.WinnerID,
	).Scan(&pick.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505": // unique_violation
				return ErrKnockoutPickExists
			case "23503": // foreign_key_violation
				return ErrKnockoutPickTeamInvalid
			}
		}
		return fmt.Errorf("failed to create knockout pick for user %s, match %d: %w", pick.UserID, pick.KnockoutMatchID, err)
	}
	return nil
}

func (r *postgresKnockoutPickRepository) GetByUserAndMatch(ctx context.Context, userID string, knockoutMatchID int) (*models.KnockoutPick, error) {
	query := `
		SELECT id, user_id, knockout_match_id, winner_id
		FROM knockout_picks
		WHERE user_id = $1 AND knockout_match_id = $2`

	pick := &models.KnockoutPick{}
	err := r.db.QueryRowContext(ctx, query, userID, knockoutMatchID).Scan(
		&pick.ID, &pick.UserID, &pick.KnockoutMatchID, &pick.WinnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKnockoutPickNotFound
		}
		return nil, fmt.Errorf("failed to scan knockout pick: %w", err)
	}
	return pick, nil
}

func (r *postgresKnockoutPickRepository) ListByUser(ctx context.Context, userID string) ([]*models.KnockoutPick, error) {
	query := `
		SELECT id, user_id, knockout_match_id, winner_id
		FROM knockout_picks
		WHERE user_id = $1
		ORDER BY knockout_match_id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list knockout picks for user %s: %w", userID, err)
	}
	defer rows.Close()

	picks := make([]*models.KnockoutPick, 0)
	for rows.Next() {
		pick := &models.KnockoutPick{}
		if err := rows.Scan(&pick.ID, &pick.UserID, &pick.KnockoutMatchID, &pick.WinnerID); err != nil {
			return nil, fmt.Errorf("failed to scan knockout pick row: %w", err)
		}
		picks = append(picks, pick)
	}
	return picks, rows.Err()
}
