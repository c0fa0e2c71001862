package model

import "time"

// Team represents a team on the leaderboard.
// Matches the teams table schema.
type Team struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(255);uniqueIndex;not null" json:"name"`
	Score       int       `gorm:"column:score;not null;default:0" json:"score"`
	Avatar      string    `gorm:"column:avatar;type:varchar(16)" json:"avatar"`
	LastUpdated time.Time `gorm:"column:last_updated;type:timestamptz;not null;default:now()" json:"lastUpdated"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}
