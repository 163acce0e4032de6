package model

import (
	"time"

	"gorm.io/datatypes"
)

// SessionState is one stored slot (offer, leads or results) of a scoring session.
type SessionState struct {
	SessionID string         `gorm:"type:varchar(128);primaryKey" json:"session_id"`
	Kind      string         `gorm:"type:varchar(32);primaryKey" json:"kind"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (s *SessionState) TableName() string {
	return "session_states"
}
