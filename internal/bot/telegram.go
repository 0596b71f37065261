package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"webeye/internal/utils/logger"
)

// Telegram connects a Dialog to the Bot API and delivers notifications.
type Telegram struct {
	api    *tgbotapi.BotAPI
	dialog *Dialog
	logger *logger.Logger
}

// NewTelegram authenticates with the Bot API. dialog may be nil for a
// send-only client.
func NewTelegram(token string, dialog *Dialog) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}

	t := &Telegram{
		api:    api,
		dialog: dialog,
		logger: logger.New("TELEGRAM"),
	}
	t.logger.Info("Authorized as @%s", api.Self.UserName)
	return t, nil
}

// Notify sends a plain text message to chatID.
func (t *Telegram) Notify(_ context.Context, chatID int64, text string) error {
	if _, err := t.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send to %d: %w", chatID, err)
	}
	return nil
}

// Run long-polls for updates until ctx is cancelled.
func (t *Telegram) Run(ctx context.Context) error {
	if t.dialog == nil {
		return fmt.Errorf("telegram: no dialog configured")
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := t.api.GetUpdatesChan(u)
	defer t.api.StopReceivingUpdates()

	t.logger.Info("Polling for updates")
	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			t.handle(ctx, update)
		}
	}
}

func (t *Telegram) handle(ctx context.Context, update tgbotapi.Update) {
	var (
		chatID int64
		reply  Reply
	)

	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		chatID = update.CallbackQuery.Message.Chat.ID
		reply = t.dialog.HandleButton(chatID, update.CallbackQuery.Data)
		if _, err := t.api.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
			t.logger.Warn("Failed to answer callback: %v", err)
		}
	case update.Message != nil && update.Message.IsCommand():
		chatID = update.Message.Chat.ID
		if update.Message.Command() != "start" {
			return
		}
		reply = t.dialog.Start(chatID)
	case update.Message != nil:
		chatID = update.Message.Chat.ID
		reply = t.dialog.HandleText(ctx, chatID, update.Message.Text)
	default:
		return
	}

	if _, err := t.api.Send(message(chatID, reply)); err != nil {
		t.logger.Warn("Failed to reply to chat %d: %v", chatID, err)
	}
}

// message renders reply as a Bot API message with an inline keyboard.
func message(chatID int64, reply Reply) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if len(reply.Buttons) == 0 {
		return msg
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(reply.Buttons))
	for _, row := range reply.Buttons {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			if b.URL != "" {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonURL(b.Text, b.URL))
				continue
			}
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons...))
	}
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	return msg
}
