package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"webeye/internal/config"
	"webeye/internal/models"
	"webeye/internal/schemas"
	"webeye/internal/testutil"
	"webeye/internal/utils"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(testutil.SetupTestDB(t), config.LoadTestConfig().Auth)
}

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, schemas.UserCreate{Email: "ann@example.com", Password: "password1", Name: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleMember, user.Role)
	assert.NotEqual(t, "password1", user.Password)

	_, err = svc.Register(ctx, schemas.UserCreate{Email: "ann@example.com", Password: "password2"})
	assert.ErrorIs(t, err, ErrConflict)

	got, err := svc.Authenticate(ctx, schemas.Credentials{Email: "ann@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, user.UUID, got.UUID)

	_, err = svc.Authenticate(ctx, schemas.Credentials{Email: "ann@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Authenticate(ctx, schemas.Credentials{Email: "bob@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestUserService_IssueAccessToken(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Register(context.Background(), schemas.UserCreate{Email: "ann@example.com", Password: "password1"})
	require.NoError(t, err)

	token, err := svc.IssueAccessToken(user)
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)

	claims, err := utils.ParseAccessToken(token.AccessToken, config.LoadTestConfig().Auth.SecretKey)
	require.NoError(t, err)
	assert.Equal(t, user.UUID, claims.UserUUID)
}

func TestUserService_LinkTelegram(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, schemas.UserCreate{Email: "ann@example.com", Password: "password1"})
	require.NoError(t, err)

	token, err := svc.GenerateBotToken(ctx, user)
	require.NoError(t, err)
	assert.Len(t, token.Token, botTokenLength)

	linked, err := svc.LinkTelegram(ctx, token.Token, 42)
	require.NoError(t, err)
	require.NotNil(t, linked.TelegramChatID)
	assert.Equal(t, int64(42), *linked.TelegramChatID)

	// tokens are single use
	_, err = svc.LinkTelegram(ctx, token.Token, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.LinkTelegram(ctx, "unknown", 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_LinkTelegramTokenClaimedConcurrently(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, schemas.UserCreate{Email: "ann@example.com", Password: "password1"})
	require.NoError(t, err)
	token, err := svc.GenerateBotToken(ctx, user)
	require.NoError(t, err)

	// another consumer marks the token used right after this one reads it
	claimed := false
	err = svc.db.Callback().Query().After("gorm:query").Register("test:claim_token", func(tx *gorm.DB) {
		if claimed || tx.Statement.Table != "bot_tokens" {
			return
		}
		claimed = true
		tx.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE bot_tokens SET used = ? WHERE uuid = ?", true, token.UUID)
	})
	require.NoError(t, err)

	_, err = svc.LinkTelegram(ctx, token.Token, 42)
	assert.True(t, claimed)
	assert.ErrorIs(t, err, ErrNotFound)

	reloaded, err := svc.Get(ctx, user.UUID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.TelegramChatID)
}

func TestUserService_LinkTelegramExpired(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, schemas.UserCreate{Email: "ann@example.com", Password: "password1"})
	require.NoError(t, err)

	token, err := svc.GenerateBotToken(ctx, user)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().UTC().Add(time.Hour) }

	_, err = svc.LinkTelegram(ctx, token.Token, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_LinkTelegramMovesChat(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	ann, err := svc.Register(ctx, schemas.UserCreate{Email: "ann@example.com", Password: "password1"})
	require.NoError(t, err)
	bob, err := svc.Register(ctx, schemas.UserCreate{Email: "bob@example.com", Password: "password1"})
	require.NoError(t, err)

	token, err := svc.GenerateBotToken(ctx, ann)
	require.NoError(t, err)
	_, err = svc.LinkTelegram(ctx, token.Token, 7)
	require.NoError(t, err)

	token, err = svc.GenerateBotToken(ctx, bob)
	require.NoError(t, err)
	_, err = svc.LinkTelegram(ctx, token.Token, 7)
	require.NoError(t, err)

	reloaded, err := svc.Get(ctx, ann.UUID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.TelegramChatID)
}
