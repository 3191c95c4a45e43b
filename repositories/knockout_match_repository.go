package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cactuspool/pickem/models"
)

var (
	ErrKnockoutMatchNotFound      = errors.New("knockout match not found")
	ErrKnockoutMatchAlreadyPlayed = errors.New("knockout match result already recorded")
)

type KnockoutMatchRepository interface {
	GetByID(ctx context.Context, id int) (*models.KnockoutMatch, error)
	List(ctx context.Context) ([]*models.KnockoutMatch, error)
	// RecordResult fixes the winner and flips played in one transition.
	RecordResult(ctx context.Context, id int, winnerID int) error
}

type postgresKnockoutMatchRepository struct {
	db *sql.DB
}

func NewPostgresKnockoutMatchRepository(db *sql.DB) KnockoutMatchRepository {
	return &postgresKnockoutMatchRepository{db: db}
}

const knockoutMatchColumns = `id, match_date, team_1_id, team_2_id, winner_id, played`

func (r *postgresKnockoutMatchRepository) scanMatch(rowScanner interface{ Scan(...interface{}) error }) (*models.KnockoutMatch, error) {
	match := &models.KnockoutMatch{}
	err := rowScanner.Scan(
		&match.ID, &match.Date,
		&match.Team1ID, &match.Team2ID,
		&match.WinnerID, &match.Played,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKnockoutMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan knockout match: %w", err)
	}
	return match, nil
}

func (r *postgresKnockoutMatchRepository) GetByID(ctx context.Context, id int) (*models.KnockoutMatch, error) {
	query := `SELECT ` + knockoutMatchColumns + ` FROM knockout_matches WHERE id = $1`
	return r.scanMatch(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresKnockoutMatchRepository) List(ctx context.Context) ([]*models.KnockoutMatch, error) {
	query := `SELECT ` + knockoutMatchColumns + ` FROM knockout_matches ORDER BY match_date, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list knockout matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.KnockoutMatch, 0)
	for rows.Next() {
		match, err := r.scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}

func (r *postgresKnockoutMatchRepository) RecordResult(ctx context.Context, id int, winnerID int) error {
	query := `
		UPDATE knockout_matches
		SET winner_id = $1, played = TRUE
		WHERE id = $2 AND played = FALSE`

	result, err := r.db.ExecContext(ctx, query, winnerID, id)
	if err != nil {
		return fmt.Errorf("failed to record result for knockout match %d: %w", id, err)
	}
	if err := checkAffectedRows(result, ErrKnockoutMatchNotFound); err != nil {
		if _, getErr := r.GetByID(ctx, id); getErr == nil {
			return ErrKnockoutMatchAlreadyPlayed
		}
		return err
	}
	return nil
}
