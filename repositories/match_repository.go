package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cactuspool/pickem/models"
)

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchAlreadyPlayed = errors.New("match result already recorded")
)

type MatchRepository interface {
	GetByID(ctx context.Context, id int) (*models.Match, error)
	List(ctx context.Context) ([]*models.Match, error)
	ListByGroup(ctx context.Context, groupID int) ([]*models.Match, error)
	ListByTeam(ctx context.Context, teamID int) ([]*models.Match, error)
	// RecordResult sets the goals and flips played exactly once. A second
	// call for the same match fails with ErrMatchAlreadyPlayed.
	RecordResult(ctx context.Context, id int, team1Goals, team2Goals int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `id, group_id, match_date, team_1_id, team_2_id, team_1_goals, team_2_goals, played`

func (r *postgresMatchRepository) scanMatch(rowScanner interface{ Scan(...interface{}) error }) (*models.Match, error) {
	match := &models.Match{}
	err := rowScanner.Scan(
		&match.ID, &match.GroupID, &match.Date,
		&match.Team1ID, &match.Team2ID,
		&match.Team1Goals, &match.Team2Goals,
		&match.Played,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match: %w", err)
	}
	return match, nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	return r.scanMatch(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresMatchRepository) List(ctx context.Context) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches ORDER BY match_date, id`
	return r.listMatches(ctx, query)
}

func (r *postgresMatchRepository) ListByGroup(ctx context.Context, groupID int) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE group_id = $1 ORDER BY match_date, id`
	return r.listMatches(ctx, query, groupID)
}

func (r *postgresMatchRepository) ListByTeam(ctx context.Context, teamID int) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE team_1_id = $1 OR team_2_id = $1 ORDER BY match_date, id`
	return r.listMatches(ctx, query, teamID)
}

func (r *postgresMatchRepository) listMatches(ctx context.Context, query string, args ...interface{}) ([]*models.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		match, err := r.scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) RecordResult(ctx context.Context, id int, team1Goals, team2Goals int) error {
	query := `
		UPDATE matches
		SET team_1_goals = $1, team_2_goals = $2, played = TRUE
		WHERE id = $3 AND played = FALSE`

	result, err := r.db.ExecContext(ctx, query, team1Goals, team2Goals, id)
	if err != nil {
		return fmt.Errorf("failed to record result for match %d: %w", id, err)
	}
	if err := checkAffectedRows(result, ErrMatchNotFound); err != nil {
		// Distinguish a missing row from one that is already played.
		if _, getErr := r.GetByID(ctx, id); getErr == nil {
			return ErrMatchAlreadyPlayed
		}
		return err
	}
	return nil
}
