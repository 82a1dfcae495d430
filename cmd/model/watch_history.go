package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WatchHistory 每个 (user, video) 只有一条记录
type WatchHistory struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UserID         string    `gorm:"size:36;uniqueIndex:idx_user_video;not null" json:"user"`
	VideoID        string    `gorm:"size:36;uniqueIndex:idx_user_video;not null" json:"-"`
	SecondsWatched float64   `gorm:"not null;default:0" json:"secondsWatched"`
	TotalDuration  float64   `gorm:"not null;default:0" json:"totalDuration"`
	Completed      bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Video          *Video    `gorm:"-" json:"video"`
}

func (w *WatchHistory) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}
