package models

import (
	"time"

	"gorm.io/datatypes"
)

// Resource is a monitored entity, e.g. a university. Names are unique among
// live rows only, so a deleted name can be reused.
type Resource struct {
	Base
	Name   string         `gorm:"not null;uniqueIndex:idx_resources_name_live,where:deleted_at IS NULL" json:"name"`
	Status Status         `gorm:"not null;default:'active'" json:"status"`
	Rating float64        `gorm:"not null;default:0" json:"rating"`
	Nodes  []ResourceNode `gorm:"foreignKey:ResourceUUID;references:UUID" json:"nodes,omitempty"`
}

// ResourceNode is a monitored URL of a Resource.
type ResourceNode struct {
	Base
	URL          string    `gorm:"not null;uniqueIndex:idx_resource_nodes_url_live,where:deleted_at IS NULL" json:"url"`
	ResourceUUID string    `gorm:"type:uuid;not null;index" json:"resource_uuid"`
	Resource     *Resource `gorm:"foreignKey:ResourceUUID;references:UUID" json:"-"`
}

// Report is a user-submitted status observation about a Resource.
type Report struct {
	Base
	ResourceUUID string    `gorm:"type:uuid;not null;index" json:"resource_uuid"`
	Resource     *Resource `gorm:"foreignKey:ResourceUUID;references:UUID" json:"-"`
	UserUUID     *string   `gorm:"type:uuid;index" json:"user_uuid,omitempty"`
	Status       Status    `gorm:"not null" json:"status"`
	Text         *string   `json:"text"`
	IsModerated  bool      `gorm:"not null;default:false;index" json:"is_moderated"`
}

type Review struct {
	Base
	ResourceUUID string    `gorm:"type:uuid;not null;index" json:"resource_uuid"`
	Resource     *Resource `gorm:"foreignKey:ResourceUUID;references:UUID" json:"-"`
	UserUUID     string    `gorm:"type:uuid;not null;index" json:"user_uuid"`
	User         *User     `gorm:"foreignKey:UserUUID;references:UUID" json:"-"`
	Text         string    `json:"text"`
	Rating       int       `gorm:"not null" json:"rating"`
}

type Subscription struct {
	Base
	UserUUID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_user_resource" json:"user_uuid"`
	User         *User     `gorm:"foreignKey:UserUUID;references:UUID" json:"-"`
	ResourceUUID string    `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_user_resource;index" json:"resource_uuid"`
	Resource     *Resource `gorm:"foreignKey:ResourceUUID;references:UUID" json:"-"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
}

// Check is a single probe result of a ResourceNode.
type Check struct {
	Base
	NodeUUID     string `gorm:"type:uuid;not null;index" json:"node_uuid"`
	ResourceUUID string `gorm:"type:uuid;not null;index" json:"resource_uuid"`
	OK           bool   `gorm:"not null" json:"ok"`
	StatusCode   int    `json:"status_code"`
	LatencyMS    int64  `json:"latency_ms"`
	Error        string `json:"error,omitempty"`
	// Meta holds response details such as the final url after redirects.
	Meta datatypes.JSONMap `json:"meta,omitempty"`
}

type User struct {
	Base
	Email          string   `gorm:"uniqueIndex;not null" json:"email"`
	Password       string   `gorm:"not null" json:"-"`
	Name           string   `json:"name"`
	Role           UserRole `gorm:"not null;default:'MEMBER'" json:"role"`
	TelegramChatID *int64   `gorm:"index" json:"telegram_chat_id,omitempty"`
}

// BotToken is a one-time code that links a User to a Telegram chat.
type BotToken struct {
	Base
	UserUUID  string    `gorm:"type:uuid;not null;index" json:"user_uuid"`
	User      *User     `gorm:"foreignKey:UserUUID;references:UUID" json:"-"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	Used      bool      `gorm:"not null;default:false" json:"used"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Resource{},
		&ResourceNode{},
		&Report{},
		&Review{},
		&Subscription{},
		&Check{},
		&BotToken{},
	}
}
