package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cactuspool/pickem/models"
)

var ErrGroupNotFound = errors.New("group not found")

type GroupRepository interface {
	GetByID(ctx context.Context, id int) (*models.Group, error)
	// List returns all groups in id order, which is tournament setup order.
	List(ctx context.Context) ([]*models.Group, error)
}

type postgresGroupRepository struct {
	db *sql.DB
}

func NewPostgresGroupRepository(db *sql.DB) GroupRepository {
	return &postgresGroupRepository{db: db}
}

func (r *postgresGroupRepository) GetByID(ctx context.Context, id int) (*models.Group, error) {
	query := `
		SELECT id, name, team_1_id, team_2_id, team_3_id, team_4_id
		FROM groups WHERE id = $1`

	group := &models.Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID, &group.Name,
		&group.Team1ID, &group.Team2ID, &group.Team3ID, &group.Team4ID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to scan group %d: %w", id, err)
	}
	return group, nil
}

func (r *postgresGroupRepository) List(ctx context.Context) ([]*models.Group, error) {
	query := `
		SELECT id, name, team_1_id, team_2_id, team_3_id, team_4_id
		FROM groups ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	groups := make([]*models.Group, 0)
	for rows.Next() {
		group := &models.Group{}
		if err := rows.Scan(
			&group.ID, &group.Name,
			&group.Team1ID, &group.Team2ID, &group.Team3ID, &group.Team4ID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}
