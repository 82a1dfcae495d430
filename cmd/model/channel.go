package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Channel struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Name            string    `gorm:"size:50;uniqueIndex;not null" json:"channelName"`
	OwnerID         string    `gorm:"size:36;index;not null" json:"owner"`
	Description     string    `gorm:"size:2048" json:"description"`
	Avatar          string    `gorm:"size:512" json:"channelAvatar"`
	Banner          string    `gorm:"size:512" json:"channelBanner"`
	SubscriberCount int64     `gorm:"not null;default:0" json:"subscribers"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (c *Channel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// Subscription is one member of a channel's subscriber set. The composite
// primary key keeps the set free of duplicates.
type Subscription struct {
	ChannelID string    `gorm:"primaryKey;size:36" json:"channelId"`
	UserID    string    `gorm:"primaryKey;size:36;index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
