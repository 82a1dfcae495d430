package database

import (
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	gormopentracing "gorm.io/plugin/opentracing"
)

// Options is shared by every connection the application opens. The schema
// carries no foreign keys: deletions only ever pull references.
func Options() *gorm.Config {
	return &gorm.Config{
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	}
}

// Init opens MySQL, installs the tracing plugin and migrates every table.
func Init() (*gorm.DB, error) {
	conn, err := gorm.Open(mysql.Open(utils.GetMysqlDsn()), Options())
	if err != nil {
		return nil, errors.Wrap(err, "open mysql failed")
	}
	if err = conn.Use(gormopentracing.New()); err != nil {
		return nil, errors.Wrap(err, "install opentracing plugin failed")
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err = Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

func Migrate(conn *gorm.DB) error {
	hlog.Info("Starting tables migration...")
	if err := conn.AutoMigrate(model.All()...); err != nil {
		hlog.Errorf("Failed to migrate tables: %v", err)
		return errors.Wrap(err, "auto migrate failed")
	}
	hlog.Info("Tables migration completed successfully")
	return nil
}
