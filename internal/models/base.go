package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base contains common columns for all tables
type Base struct {
	UUID      string         `gorm:"type:uuid;primaryKey" json:"uuid"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate will set a UUID rather than numeric ID
func (base *Base) BeforeCreate(tx *gorm.DB) error {
	if base.UUID == "" {
		base.UUID = uuid.New().String()
	}
	return nil
}

// Status is the operational state shared by resources and reports.
type Status string

const (
	StatusActive   Status = "active"
	StatusUnstable Status = "unstable"
	StatusDown     Status = "down"
	StatusUnknown  Status = "unknown"
)

// IsValidStatus checks if a given status is one of the known values
func IsValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusUnstable, StatusDown, StatusUnknown:
		return true
	default:
		return false
	}
}

type UserRole string

const (
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleMember     UserRole = "MEMBER"
)

// IsValidUserRole checks if a given role is valid
func IsValidUserRole(role UserRole) bool {
	switch role {
	case UserRoleAdmin, UserRoleMember, UserRoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role may moderate.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}
