// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nuitinfo/podium-live/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a new team with a zero score.
	Create(ctx context.Context, name, avatar string) (*model.Team, error)

	// GetByID finds a team by its identifier.
	GetByID(ctx context.Context, id uint) (*model.Team, error)

	// ListRanked returns all teams ordered by score descending.
	// Ties order by id ascending so repeated reads are stable.
	ListRanked(ctx context.Context) ([]model.Team, error)

	// IncrementScore atomically applies a relative score change and
	// refreshes last_updated.
	IncrementScore(ctx context.Context, id uint, delta int) (*model.Team, error)

	// ResetScore sets a single team's score back to zero.
	ResetScore(ctx context.Context, id uint) (*model.Team, error)

	// ResetAll sets every team's score to zero in one statement.
	ResetAll(ctx context.Context) error

	// Delete removes a team permanently.
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new team with a zero score.
func (r *repository) Create(ctx context.Context, name, avatar string) (*model.Team, error) {
	team := &model.Team{
		Name:        name,
		Avatar:      avatar,
		Score:       0,
		LastUpdated: time.Now(),
	}

	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			return nil, model.ErrTeamExists
		}
		r.logger.Errorw("create team failed", "name", name, "error", err)
		return nil, err
	}

	return team, nil
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Postgres and SQLite phrase the violation differently.
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}

// GetByID finds a team by its identifier.
func (r *repository) GetByID(ctx context.Context, id uint) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// ListRanked returns all teams ordered by score descending, id ascending.
func (r *repository) ListRanked(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team

	err := r.db.WithContext(ctx).
		Order("score DESC, id ASC").
		Find(&teams).Error
	if err != nil {
		r.logger.Errorw("list teams failed", "error", err)
		return nil, err
	}

	if teams == nil {
		teams = []model.Team{}
	}

	return teams, nil
}

// IncrementScore atomically applies a relative score change.
func (r *repository) IncrementScore(ctx context.Context, id uint, delta int) (*model.Team, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"score":        gorm.Expr("score + ?", delta),
			"last_updated": time.Now(),
		})

	if res.Error != nil {
		r.logger.Errorw("increment score failed", "team_id", id, "error", res.Error)
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, model.ErrTeamNotFound
	}

	return r.GetByID(ctx, id)
}

// ResetScore sets a single team's score back to zero.
func (r *repository) ResetScore(ctx context.Context, id uint) (*model.Team, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"score":        0,
			"last_updated": time.Now(),
		})

	if res.Error != nil {
		r.logger.Errorw("reset score failed", "team_id", id, "error", res.Error)
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, model.ErrTeamNotFound
	}

	return r.GetByID(ctx, id)
}

// ResetAll sets every team's score to zero.
// A single UPDATE keeps the reset atomic from the reader's point of view.
func (r *repository) ResetAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Updates(map[string]interface{}{
			"score":        0,
			"last_updated": time.Now(),
		}).Error
	if err != nil {
		r.logger.Errorw("reset all scores failed", "error", err)
	}
	return err
}

// Delete removes a team permanently.
func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Team{})

	if res.Error != nil {
		r.logger.Errorw("delete team failed", "team_id", id, "error", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrTeamNotFound
	}

	return nil
}
