// api/db/postgres.go
package db

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	logger "github.com/solistore/gateway/api/logging"
	"github.com/solistore/gateway/api/model"
)

var DB *gorm.DB

func InitPostgres() error {
	dsn := viper.GetString("postgres.dsn")

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := DB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Vendor{},
		&model.Product{},
		&model.Attribute{},
		&model.AttributeValue{},
		&model.ProductVariant{},
		&model.Basket{},
		&model.BasketItem{},
		&model.Order{},
		&model.OrderLine{},
		&model.Notification{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Successfully connected to Postgres")
	return nil
}

func ClosePostgres() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Error("Error obtaining underlying sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing Postgres connection", zap.Error(err))
	}
}
