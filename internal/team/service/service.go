// Package service provides business logic layer for the team module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nuitinfo/podium-live/internal/team/model"
	"github.com/nuitinfo/podium-live/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// ListTeamsRanked returns all teams ordered by score descending.
	ListTeamsRanked(ctx context.Context) ([]model.Team, error)

	// AddTeam registers a new team with a zero score.
	AddTeam(ctx context.Context, req *model.AddTeamRequest) (*model.Team, error)

	// UpdateScore applies a relative score change (positive or negative).
	UpdateScore(ctx context.Context, id uint, delta int) (*model.Team, error)

	// ResetTeamScore sets one team's score back to zero.
	ResetTeamScore(ctx context.Context, id uint) (*model.Team, error)

	// ResetScores sets every team's score to zero. No-op on an empty table.
	ResetScores(ctx context.Context) error

	// DeleteTeam removes a team permanently.
	DeleteTeam(ctx context.Context, id uint) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// ListTeamsRanked returns all teams ordered by score descending.
func (s *service) ListTeamsRanked(ctx context.Context) ([]model.Team, error) {
	return s.repo.ListRanked(ctx)
}

// AddTeam registers a new team with a zero score.
// The name is trimmed before validation; an empty or whitespace-only name
// is rejected before the store is touched.
func (s *service) AddTeam(ctx context.Context, req *model.AddTeamRequest) (*model.Team, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.ErrInvalidTeamName
	}

	team, err := s.repo.Create(ctx, name, req.Avatar)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team added", "team_id", team.ID, "name", team.Name)
	return team, nil
}

// UpdateScore applies a relative score change.
func (s *service) UpdateScore(ctx context.Context, id uint, delta int) (*model.Team, error) {
	team, err := s.repo.IncrementScore(ctx, id, delta)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("score updated", "team_id", id, "delta", delta, "score", team.Score)
	return team, nil
}

// ResetTeamScore sets one team's score back to zero.
func (s *service) ResetTeamScore(ctx context.Context, id uint) (*model.Team, error) {
	team, err := s.repo.ResetScore(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team score reset", "team_id", id)
	return team, nil
}

// ResetScores sets every team's score to zero.
func (s *service) ResetScores(ctx context.Context) error {
	if err := s.repo.ResetAll(ctx); err != nil {
		return err
	}

	s.logger.Infow("all scores reset")
	return nil
}

// DeleteTeam removes a team permanently.
func (s *service) DeleteTeam(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("team deleted", "team_id", id)
	return nil
}
