package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VideoReaction 一个用户对一个视频至多一条记录，Kind 为 like 或 dislike，
// 因此同一用户不可能同时出现在点赞集合与点踩集合中
type VideoReaction struct {
	VideoID   string    `gorm:"primaryKey;size:36" json:"videoId"`
	UserID    string    `gorm:"primaryKey;size:36;index" json:"userId"`
	Kind      string    `gorm:"size:16;index;not null" json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Comment struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	Text       string     `gorm:"type:text;not null" json:"text"`
	VideoID    string     `gorm:"size:36;index;not null" json:"video"`
	UserID     string     `gorm:"size:36;index;not null" json:"-"`
	ParentID   *string    `gorm:"size:36;index" json:"parentComment"`
	Likes      int64      `gorm:"not null;default:0" json:"likes"`
	Engagement int64      `gorm:"not null;default:0" json:"engagement"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Author     *UserBrief `gorm:"-" json:"user"`
	Replies    []*Comment `gorm:"-" json:"replies"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

func (c *Comment) IsReply() bool {
	return c.ParentID != nil && *c.ParentID != ""
}

type CommentLike struct {
	CommentID string    `gorm:"primaryKey;size:36" json:"commentId"`
	UserID    string    `gorm:"primaryKey;size:36;index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
