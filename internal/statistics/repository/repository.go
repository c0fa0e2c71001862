// Package repository provides data access layer for the statistics module.
package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nuitinfo/podium-live/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetLeaderboardStatistics returns aggregate figures over the teams table.
	GetLeaderboardStatistics(ctx context.Context) (*model.LeaderboardStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetLeaderboardStatistics returns aggregate figures over the teams table.
func (r *repository) GetLeaderboardStatistics(ctx context.Context) (*model.LeaderboardStatistics, error) {
	var result struct {
		TeamCount    int64      `gorm:"column:team_count"`
		TopScore     int64      `gorm:"column:top_score"`
		AverageScore float64    `gorm:"column:average_score"`
		LastUpdated  *time.Time `gorm:"column:last_updated"`
	}

	err := r.db.WithContext(ctx).
		Table("teams").
		Select(`
			COUNT(*) as team_count,
			COALESCE(MAX(score), 0) as top_score,
			COALESCE(AVG(score), 0) as average_score,
			MAX(last_updated) as last_updated
		`).
		Scan(&result).Error

	if err != nil {
		r.logger.Errorw("GetLeaderboardStatistics database error", "error", err)
		return nil, err
	}

	return &model.LeaderboardStatistics{
		TeamCount:    int(result.TeamCount),
		TopScore:     int(result.TopScore),
		AverageScore: result.AverageScore,
		LastUpdated:  result.LastUpdated,
	}, nil
}
