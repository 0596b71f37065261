package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"webeye/internal/api/middleware"
	"webeye/internal/schemas"
)

var (
	// ErrInvalidToken means the API does not know the token or it expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrUnauthorized means the API rejected the bot secret.
	ErrUnauthorized = errors.New("bot secret rejected")
)

// APIClient talks to the WebEye HTTP API on behalf of the bot.
type APIClient struct {
	baseURL string
	secret  string
	http    *http.Client
}

func NewAPIClient(baseURL, secret string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify links chatID to the account that generated token.
func (c *APIClient) Verify(ctx context.Context, token string, chatID int64) error {
	body, err := json.Marshal(schemas.BotTokenVerify{Token: token, ChatID: chatID})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/users/telegram/verify", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.BotSecretHeader, c.secret)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("verify token: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound, http.StatusBadRequest:
		return ErrInvalidToken
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return fmt.Errorf("verify token: unexpected status %d", resp.StatusCode)
	}
}
