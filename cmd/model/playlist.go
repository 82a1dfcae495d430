package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Playlist struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Description string     `gorm:"size:2048" json:"description"`
	OwnerID     string     `gorm:"size:36;index;not null" json:"owner"`
	IsPublic    bool       `gorm:"not null;default:false" json:"isPublic"`
	Thumbnail   string     `gorm:"size:512" json:"thumbnail"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Videos      []*Video   `gorm:"-" json:"videos"`
	Owner       *UserBrief `gorm:"-" json:"ownerInfo,omitempty"`
}

func (p *Playlist) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PlaylistVideo keeps the playlist order in Position.
type PlaylistVideo struct {
	PlaylistID string    `gorm:"primaryKey;size:36" json:"playlistId"`
	VideoID    string    `gorm:"primaryKey;size:36" json:"videoId"`
	Position   int       `gorm:"not null" json:"position"`
	CreatedAt  time.Time `json:"createdAt"`
}
