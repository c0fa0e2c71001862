// Package seed provides the one-shot demo data seeding routine.
package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nuitinfo/podium-live/internal/team/model"
)

// demoTeam is one entry of the fixed demo roster.
type demoTeam struct {
	Name   string
	Score  int
	Avatar string
}

// DemoTeams is the fixed demo roster, highest score first.
var DemoTeams = []demoTeam{
	{Name: "Les Null Pointers", Score: 420, Avatar: "🎯"},
	{Name: "Stack Overflow", Score: 380, Avatar: "📚"},
	{Name: "Les Git Pushers", Score: 350, Avatar: "🚀"},
	{Name: "404 Brain Not Found", Score: 310, Avatar: "🧠"},
	{Name: "Console.log(café)", Score: 290, Avatar: "☕"},
	{Name: "Infinite Loopers", Score: 250, Avatar: "🔄"},
	{Name: "Les Segfaulters", Score: 200, Avatar: "💥"},
	{Name: "Try { Catch } Sleep", Score: 180, Avatar: "😴"},
	{Name: "Les CSS Wizards", Score: 150, Avatar: "🧙"},
	{Name: "Debug Dragons", Score: 100, Avatar: "🐉"},
}

// Run replaces the entire teams table with the demo roster.
// The delete and the inserts share one transaction, so the seed is an
// idempotent full replace: re-running it always ends in the same state.
func Run(ctx context.Context, db *gorm.DB, logger *zap.SugaredLogger) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.Team{}).Error; err != nil {
			return fmt.Errorf("failed to clear teams: %w", err)
		}

		now := time.Now()
		for _, d := range DemoTeams {
			team := model.Team{
				Name:        d.Name,
				Score:       d.Score,
				Avatar:      d.Avatar,
				LastUpdated: now,
			}
			if err := tx.Create(&team).Error; err != nil {
				return fmt.Errorf("failed to create team %q: %w", d.Name, err)
			}
			logger.Infow("team seeded", "name", team.Name, "score", team.Score)
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.Infow("seeding complete", "teams", len(DemoTeams))
	return nil
}
