package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cactuspool/pickem/models"
	"github.com/cactuspool/pickem/repositories"
	"github.com/cactuspool/pickem/storage"
)

var crestExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/svg+xml": ".svg",
}

type TeamService interface {
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context) ([]*models.Team, error)
	// UploadCrest stores a crest image for the team and returns the team
	// with its public crest URL populated. A previous crest is replaced.
	UploadCrest(ctx context.Context, teamID int, contentType string, file io.Reader) (*models.Team, error)
}

type teamService struct {
	teamRepo repositories.TeamRepository
	uploader storage.FileUploader
}

func NewTeamService(teamRepo repositories.TeamRepository, uploader storage.FileUploader) TeamService {
	return &teamService{teamRepo: teamRepo, uploader: uploader}
}

func (s *teamService) GetByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	s.populateCrestURL(team)
	return team, nil
}

func (s *teamService) List(ctx context.Context) ([]*models.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, team := range teams {
		s.populateCrestURL(team)
	}
	return teams, nil
}

func (s *teamService) UploadCrest(ctx context.Context, teamID int, contentType string, file io.Reader) (*models.Team, error) {
	ext, ok := crestExtensions[contentType]
	if !ok {
		return nil, ErrUnsupportedCrestType
	}

	team, err := s.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("crests/team_%d%s", teamID, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload crest for team %d: %w", teamID, err)
	}

	// A replaced crest may live under a different extension; remove it.
	if team.CrestKey != nil && *team.CrestKey != result.Key {
		_ = s.uploader.Delete(ctx, *team.CrestKey)
	}

	if err := s.teamRepo.UpdateCrestKey(ctx, teamID, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to store crest key for team %d: %w", teamID, err)
	}

	team.CrestKey = &result.Key
	s.populateCrestURL(team)
	return team, nil
}

func (s *teamService) populateCrestURL(team *models.Team) {
	if team.CrestKey == nil {
		return
	}
	if url := s.uploader.GetPublicURL(*team.CrestKey); url != "" {
		team.CrestURL = &url
	}
}
