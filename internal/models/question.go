package models

import (
	"time"
)

type Question struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	OriginHash string     `gorm:"size:64;index" json:"-"` // salted hash only, raw origin is never stored
	Archived   bool       `gorm:"default:false;index" json:"archived"`
	ArchivedAt *time.Time `json:"archived_at"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
