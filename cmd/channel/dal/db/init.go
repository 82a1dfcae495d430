package db

import (
	"context"

	"VidTube.com/pkg/database"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init init DB
func Init(conn *gorm.DB) {
	DB = conn
}

func conn(ctx context.Context) *gorm.DB {
	return database.Conn(ctx, DB)
}
