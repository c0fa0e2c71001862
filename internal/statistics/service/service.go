// Package service provides business logic layer for the statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/nuitinfo/podium-live/internal/statistics/model"
	"github.com/nuitinfo/podium-live/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetLeaderboardStatistics returns aggregate figures for the admin view.
	GetLeaderboardStatistics(ctx context.Context) (*model.LeaderboardStatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetLeaderboardStatistics returns aggregate figures for the admin view.
func (s *service) GetLeaderboardStatistics(ctx context.Context) (*model.LeaderboardStatisticsResponse, error) {
	stats, err := s.repo.GetLeaderboardStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetLeaderboardStatistics failed", "error", err)
		return nil, err
	}

	return &model.LeaderboardStatisticsResponse{
		Statistics: *stats,
	}, nil
}
