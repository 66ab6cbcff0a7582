package database

import (
	"fmt"
	"time"

	"github.com/commforge/community_backend/internal/config"
	"github.com/commforge/community_backend/internal/models"
	"github.com/commforge/community_backend/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.GetDSN()

	var logLevel gormlogger.LogLevel
	if cfg.AppEnv == "development" {
		logLevel = gormlogger.Info
	} else {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetMaxOpenConns(200)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	logger.Info("database connected")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	logger.Info("running database migrations")

	err := db.AutoMigrate(
		&models.Community{},
		&models.Post{},
		&models.Comment{},
		&models.Course{},
		&models.Lesson{},
		&models.LevelConfiguration{},
		&models.LevelDefinition{},
		&models.MemberPoints{},
		&models.PointTransaction{},
		&models.CourseLevelRequirement{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("database migrations completed")
	return nil
}

// SeedDevelopmentData creates a demo community with a course and lessons so
// the trigger endpoints have rows to point at. No-op when a community
// already exists.
func SeedDevelopmentData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Community{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Info("seeding development data")

	community := models.Community{
		Name:        "Makers Guild",
		Description: "Demo community for local development",
	}
	if err := db.Create(&community).Error; err != nil {
		return err
	}

	course := models.Course{
		CommunityID: community.ID,
		Title:       "Getting Started",
	}
	if err := db.Create(&course).Error; err != nil {
		return err
	}

	lessons := []models.Lesson{
		{CourseID: course.ID, Title: "Welcome", Position: 1},
		{CourseID: course.ID, Title: "Your first post", Position: 2},
		{CourseID: course.ID, Title: "Community etiquette", Position: 3},
	}
	return db.Create(&lessons).Error
}
