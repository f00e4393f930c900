package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Moderation actions recorded in the audit log.
const (
	ActionQueue   = "queue"
	ActionPublish = "publish"
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionDelete  = "delete"
	ActionRestore = "restore"
)

// Actor roles.
const (
	RoleViewer    = "viewer"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// LogDetails is the structured payload of a log entry, stored as jsonb.
type LogDetails struct {
	SessionID string    `json:"session_id,omitempty"`
	Reasons   []string  `json:"reasons,omitempty"`
	PendingID uint      `json:"pending_id,omitempty"`
	Snapshot  *Question `json:"snapshot,omitempty"` // captured before a hard delete
	Error     string    `json:"error,omitempty"`
}

func (d LogDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *LogDetails) Scan(value interface{}) error {
	if value == nil {
		*d = LogDetails{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return errors.New("unsupported type for LogDetails")
	}
}

// ModerationLog is append-only: rows are inserted, never updated or deleted.
type ModerationLog struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Action     string     `gorm:"size:20;not null;index" json:"action"`
	ActorRole  string     `gorm:"size:20;not null;index" json:"actor_role"`
	QuestionID *uint      `gorm:"index" json:"question_id"`
	Details    LogDetails `gorm:"type:jsonb" json:"details"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
