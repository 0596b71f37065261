package bot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webeye/internal/schemas"
)

type stubVerifier struct {
	err    error
	tokens []string
}

func (s *stubVerifier) Verify(_ context.Context, token string, _ int64) error {
	s.tokens = append(s.tokens, token)
	return s.err
}

func TestDialog_StartShowsMainWindow(t *testing.T) {
	d := NewDialog(&stubVerifier{}, "https://webeye.example/registration")

	reply := d.Start(7)

	assert.Equal(t, StateMain, d.State(7))
	assert.Equal(t, textMain, reply.Text)
	require.Len(t, reply.Buttons, 2)
	assert.Equal(t, "https://webeye.example/registration", reply.Buttons[0][0].URL)
	assert.Equal(t, ActionLogin, reply.Buttons[0][1].Data)
}

func TestDialog_Navigation(t *testing.T) {
	d := NewDialog(&stubVerifier{}, "")
	d.Start(1)

	reply := d.HandleButton(1, ActionLogin)
	assert.Equal(t, StateLogin, d.State(1))
	assert.Equal(t, textLogin, reply.Text)

	d.HandleButton(1, ActionBack)
	assert.Equal(t, StateMain, d.State(1))

	reply = d.HandleButton(1, ActionInfo)
	assert.Equal(t, StateInfo, d.State(1))
	assert.Equal(t, textInfo, reply.Text)

	// login is only reachable from main
	d.HandleButton(1, ActionLogin)
	assert.Equal(t, StateInfo, d.State(1))
}

func TestDialog_ValidTokenLinksChat(t *testing.T) {
	verifier := &stubVerifier{}
	d := NewDialog(verifier, "")
	d.Start(5)
	d.HandleButton(5, ActionLogin)

	reply := d.HandleText(context.Background(), 5, "  abcdEFGH12345678 \n")

	assert.Equal(t, []string{"abcdEFGH12345678"}, verifier.tokens)
	assert.Equal(t, StateMain, d.State(5))
	assert.Contains(t, reply.Text, textLinked)
}

func TestDialog_InvalidTokenStaysInLogin(t *testing.T) {
	d := NewDialog(&stubVerifier{err: ErrInvalidToken}, "")
	d.HandleButton(5, ActionLogin)

	reply := d.HandleText(context.Background(), 5, "nope")

	assert.Equal(t, StateLogin, d.State(5))
	assert.Equal(t, textInvalidToken, reply.Text)

	d = NewDialog(&stubVerifier{err: errors.New("connection refused")}, "")
	d.HandleButton(5, ActionLogin)
	reply = d.HandleText(context.Background(), 5, "nope")
	assert.Equal(t, StateLogin, d.State(5))
	assert.Equal(t, textUnavailable, reply.Text)
}

func TestDialog_TextOutsideLoginIsNotVerified(t *testing.T) {
	verifier := &stubVerifier{}
	d := NewDialog(verifier, "")

	reply := d.HandleText(context.Background(), 9, "hello")

	assert.Empty(t, verifier.tokens)
	assert.Equal(t, textMain, reply.Text)
}

func TestAPIClient_Verify(t *testing.T) {
	var got schemas.BotTokenVerify
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/users/telegram/verify", r.URL.Path)
		if r.Header.Get("X-Bot-Secret") != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		if got.Token != "good" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx := context.Background()
	client := NewAPIClient(srv.URL+"/api/", "s3cret")

	require.NoError(t, client.Verify(ctx, "good", 42))
	assert.Equal(t, schemas.BotTokenVerify{Token: "good", ChatID: 42}, got)
	assert.ErrorIs(t, client.Verify(ctx, "bad", 42), ErrInvalidToken)
	assert.ErrorIs(t, NewAPIClient(srv.URL+"/api", "wrong").Verify(ctx, "good", 42), ErrUnauthorized)
}

func TestMessage_RendersKeyboard(t *testing.T) {
	d := NewDialog(&stubVerifier{}, "https://webeye.example/registration")

	msg := message(3, d.Start(3))

	assert.Equal(t, int64(3), msg.ChatID)
	markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, markup.InlineKeyboard, 2)
	require.NotNil(t, markup.InlineKeyboard[0][0].URL)
	assert.Equal(t, "https://webeye.example/registration", *markup.InlineKeyboard[0][0].URL)
	require.NotNil(t, markup.InlineKeyboard[0][1].CallbackData)
	assert.Equal(t, ActionLogin, *markup.InlineKeyboard[0][1].CallbackData)

	plain := message(3, Reply{Text: "hi"})
	assert.Nil(t, plain.ReplyMarkup)
}
