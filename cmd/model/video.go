package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Video struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Title        string    `gorm:"size:100;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	URL          string    `gorm:"size:512;not null" json:"videoUrl"`
	ThumbnailURL string    `gorm:"size:512;not null" json:"thumbnailUrl"`
	Duration     float64   `json:"duration"`
	ChannelID    string    `gorm:"size:36;index;not null" json:"channel"`
	UploaderID   string    `gorm:"size:36;index;not null" json:"uploader"`
	Views        int64     `gorm:"not null;default:0" json:"views"`
	Likes        int64     `gorm:"not null;default:0" json:"likes"`
	Dislikes     int64     `gorm:"not null;default:0" json:"dislikes"`
	Category     string    `gorm:"size:64;index;not null" json:"category"`
	Tags         Tags      `gorm:"type:text" json:"tags"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

// Tags is stored as a JSON array column.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Tags) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported tags column type %T", src)
	}
	if len(raw) == 0 {
		*t = Tags{}
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(t))
}
