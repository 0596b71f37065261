package models

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"webeye/internal/config"
	console "webeye/internal/utils/logger"

	"gorm.io/gorm"
)

var log = console.New("SEEDER")

// CreateSuperAdmin creates the configured super admin unless one already
// exists. Without SUPERADMIN_EMAIL and SUPERADMIN_PASSWORD it does nothing.
func CreateSuperAdmin(db *gorm.DB, cfg *config.Config) error {
	role := UserRoleSuperAdmin

	if cfg.Auth.SuperAdminEmail == "" || cfg.Auth.SuperAdminPassword == "" {
		log.Debug("Super admin credentials not set, skipping")
		return nil
	}

	// check if super admin already exists
	var count int64
	if err := db.Model(&User{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count super admins: %w", err)
	}
	log.Info("Super admin count: %d", count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := User{
		Name:     cfg.Auth.SuperAdminName,
		Email:    cfg.Auth.SuperAdminEmail,
		Role:     role,
		Password: string(hashedPassword),
	}

	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create superadmin user: %w", err)
	}

	return nil
}
