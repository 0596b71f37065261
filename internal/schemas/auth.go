package schemas

import (
	"time"

	"webeye/internal/models"
)

// Credentials binds from JSON ({"email", "password"}) or from an OAuth2
// password form ("username", "password").
type Credentials struct {
	Email    string `json:"email" form:"username" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type JWTToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type JWTTokenPayload struct {
	UserUUID string `json:"user_uuid"`
}

type Msg struct {
	Msg string `json:"msg"`
}

type UserCreate struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"max=255"`
}

type UserOut struct {
	UUID           string          `json:"uuid"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Role           models.UserRole `json:"role"`
	IsAdmin        bool            `json:"is_admin"`
	TelegramLinked bool            `json:"telegram_linked"`
}

func NewUserOut(u *models.User) UserOut {
	return UserOut{
		UUID:           u.UUID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		IsAdmin:        u.Role.IsAdmin(),
		TelegramLinked: u.TelegramChatID != nil,
	}
}

type BotTokenOut struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type BotTokenVerify struct {
	Token  string `json:"token" validate:"required,max=64"`
	ChatID int64  `json:"chat_id" validate:"required"`
}
