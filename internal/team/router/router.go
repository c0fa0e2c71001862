// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nuitinfo/podium-live/internal/team/handler"
	"github.com/nuitinfo/podium-live/internal/team/repository"
	"github.com/nuitinfo/podium-live/internal/team/service"
)

// RegisterRoutes registers team module routes.
// The public ranked list stays open; mutations sit behind the admin gate.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, adminGate gin.HandlerFunc) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/api/teams", h.ListTeams)

	admin := r.Group("/api/admin", adminGate)
	admin.POST("/teams", h.AddTeam)
	admin.POST("/teams/:id/score", h.UpdateScore)
	admin.POST("/teams/:id/reset", h.ResetTeamScore)
	admin.POST("/reset", h.ResetScores)
	admin.DELETE("/teams/:id", h.DeleteTeam)
}
