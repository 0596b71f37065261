package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"webeye/internal/config"
	"webeye/internal/models"
	"webeye/internal/schemas"
	"webeye/internal/utils"
	"webeye/internal/utils/logger"
)

const (
	msgUserNotFound    = "The user with this id does not exist"
	msgUserExists      = "The user with this email already exists"
	msgBadCredentials  = "Incorrect email or password"
	msgBotTokenInvalid = "The token is invalid or expired"

	botTokenLength = 16
)

type UserService struct {
	db     *gorm.DB
	auth   config.AuthConfig
	logger *logger.Logger
	now    func() time.Time
}

func NewUserService(db *gorm.DB, auth config.AuthConfig) *UserService {
	return &UserService{
		db:     db,
		auth:   auth,
		logger: logger.New("user_service"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *UserService) Register(ctx context.Context, in schemas.UserCreate) (*models.User, error) {
	_, err := models.GetUserByEmail(in.Email, s.db.WithContext(ctx))
	if err == nil {
		return nil, Conflict(msgUserExists)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, s.logger.Error("failed to hash password", err)
	}

	user := &models.User{
		Email:    in.Email,
		Password: string(hashed),
		Name:     in.Name,
		Role:     models.UserRoleMember,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, translate(err, "", msgUserExists)
	}

	s.logger.Info("Registered user %s", user.Email)
	return user, nil
}

// Authenticate returns Invalid for both an unknown email and a wrong
// password.
func (s *UserService) Authenticate(ctx context.Context, creds schemas.Credentials) (*models.User, error) {
	user, err := models.GetUserByEmail(creds.Email, s.db.WithContext(ctx))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Invalid(msgBadCredentials)
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return nil, Invalid(msgBadCredentials)
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "uuid = ?", id).Error; err != nil {
		return nil, translate(err, msgUserNotFound, "")
	}
	return &user, nil
}

func (s *UserService) IssueAccessToken(user *models.User) (schemas.JWTToken, error) {
	token, err := utils.GenerateAccessToken(user.UUID, s.auth.SecretKey, s.auth.AccessTokenExpiry)
	if err != nil {
		return schemas.JWTToken{}, s.logger.Error("failed to sign access token", err)
	}
	return schemas.JWTToken{AccessToken: token, TokenType: utils.TokenType}, nil
}

// GenerateBotToken issues a one-time token the user types into the bot.
func (s *UserService) GenerateBotToken(ctx context.Context, user *models.User) (*models.BotToken, error) {
	value, err := utils.GenerateRandomString(botTokenLength)
	if err != nil {
		return nil, s.logger.Error("failed to generate bot token", err)
	}

	token := &models.BotToken{
		UserUUID:  user.UUID,
		Token:     value,
		ExpiresAt: s.now().Add(s.auth.BotTokenExpiry),
	}
	if err := s.db.WithContext(ctx).Create(token).Error; err != nil {
		return nil, err
	}
	return token, nil
}

// LinkTelegram consumes a bot token and binds chatID to its user. A chat is
// linked to at most one user.
func (s *UserService) LinkTelegram(ctx context.Context, value string, chatID int64) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var token models.BotToken
		err := tx.Where("token = ? AND used = ? AND expires_at > ?", value, false, s.now()).
			First(&token).Error
		if err != nil {
			return translate(err, msgBotTokenInvalid, "")
		}

		// only one concurrent consumer may flip used
		claimed := tx.Model(&models.BotToken{}).
			Where("uuid = ? AND used = ?", token.UUID, false).
			Update("used", true)
		if claimed.Error != nil {
			return claimed.Error
		}
		if claimed.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound, msgBotTokenInvalid, "")
		}

		if err := tx.Model(&models.User{}).
			Where("telegram_chat_id = ? AND uuid <> ?", chatID, token.UserUUID).
			Update("telegram_chat_id", nil).Error; err != nil {
			return err
		}

		if err := tx.First(&user, "uuid = ?", token.UserUUID).Error; err != nil {
			return translate(err, msgBotTokenInvalid, "")
		}
		user.TelegramChatID = &chatID
		return tx.Model(&user).Update("telegram_chat_id", chatID).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Linked telegram chat %d to user %s", chatID, user.Email)
	return &user, nil
}
