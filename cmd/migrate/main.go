package main

import (
	"github.com/LeakhenaSok/StudioFlow/internal/auth"
	"github.com/LeakhenaSok/StudioFlow/internal/config"
	"github.com/LeakhenaSok/StudioFlow/internal/constant"
	"github.com/LeakhenaSok/StudioFlow/internal/database"
	"github.com/LeakhenaSok/StudioFlow/internal/env"
	"github.com/LeakhenaSok/StudioFlow/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	env.LoadEnv()
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`)

	migrateErr := db.AutoMigrate(
		&model.User{},
		&model.Token{},
		&model.OAuthProvider{},
		&model.Project{},
		&model.ProjectMember{},
		&model.ProjectFile{},
		&model.CalendarEvent{},
		&model.Comment{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}

	seedAdmin(db, logger)
}

// seedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD
// when no admin exists yet. Sign-up only ever provisions photographer
// profiles, so a fresh database needs one admin bootstrapped here.
func seedAdmin(db *gorm.DB, logger *zap.SugaredLogger) {
	email := env.GetString("ADMIN_EMAIL", "")
	password := env.GetString("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		logger.Info("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	if err := db.Model(&model.User{}).Where("role = ?", constant.UserRoleAdmin).Count(&count).Error; err != nil {
		logger.Panic(err)
	}
	if count > 0 {
		logger.Info("Admin account already exists, skipping admin seed")
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		logger.Panic(err)
	}

	admin := model.User{
		Email:        email,
		Name:         env.GetString("ADMIN_NAME", "Studio Admin"),
		PasswordHash: hash,
		Role:         constant.UserRoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		logger.Panic(err)
	}

	logger.Infof("Seeded admin account %s", email)
}
