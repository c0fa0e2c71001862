// Package model provides domain models and DTOs for the team module.
package model

// AddTeamRequest represents the request to register a new team.
type AddTeamRequest struct {
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar"`
}

// UpdateScoreRequest represents a relative score adjustment.
// Delta is a pointer so that a missing field is distinguishable from zero.
type UpdateScoreRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

// TeamResponse wraps a single team record in API responses.
type TeamResponse struct {
	Team Team `json:"team"`
}
