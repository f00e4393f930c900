package models

import (
	"time"
)

// Review statuses. pending is the only state approve/reject accept;
// approved and rejected are terminal.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

type PendingReview struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	QuestionID uint       `gorm:"not null;index" json:"question_id"`
	Reason     string     `gorm:"size:200;not null" json:"reason"` // comma-joined policy reason codes
	Status     string     `gorm:"size:20;default:'pending';not null;index" json:"status"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
