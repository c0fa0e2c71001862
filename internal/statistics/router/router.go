// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nuitinfo/podium-live/internal/statistics/handler"
	"github.com/nuitinfo/podium-live/internal/statistics/repository"
	"github.com/nuitinfo/podium-live/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes behind the admin gate.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, adminGate gin.HandlerFunc) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/api/admin/stats", adminGate, h.GetLeaderboardStatistics)
}
