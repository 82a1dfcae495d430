package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationNewVideo     = "new_video"
	NotificationComment      = "comment"
	NotificationLike         = "like"
	NotificationReply        = "reply"
	NotificationSubscription = "subscription"
)

type TargetKind string

const (
	TargetVideo   TargetKind = "Video"
	TargetComment TargetKind = "Comment"
	TargetChannel TargetKind = "Channel"
)

// NotificationTarget is the entity a notification points at.
type NotificationTarget struct {
	Kind TargetKind `gorm:"size:16" json:"kind"`
	ID   string     `gorm:"size:36" json:"id"`
}

type Notification struct {
	ID          string             `gorm:"primaryKey;size:36" json:"id"`
	UserID      string             `gorm:"size:36;index;not null" json:"user"`
	Type        string             `gorm:"size:32;not null" json:"type"`
	RelatedTo   NotificationTarget `gorm:"embedded;embeddedPrefix:related_" json:"relatedTo"`
	TriggeredBy string             `gorm:"size:36" json:"triggeredBy"`
	Message     string             `gorm:"size:512;not null" json:"message"`
	IsRead      bool               `gorm:"not null;default:false" json:"isRead"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
