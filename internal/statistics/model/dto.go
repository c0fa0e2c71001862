// Package model provides data transfer objects for the statistics module.
package model

import "time"

// LeaderboardStatistics represents aggregate figures over the teams table.
type LeaderboardStatistics struct {
	TeamCount    int        `json:"team_count"`
	TopScore     int        `json:"top_score"`
	AverageScore float64    `json:"average_score"`
	LastUpdated  *time.Time `json:"last_updated"`
}

// LeaderboardStatisticsResponse wraps the aggregate figures.
type LeaderboardStatisticsResponse struct {
	Statistics LeaderboardStatistics `json:"statistics"`
}
