// Package bot implements the Telegram front-end: a per-chat dialog that
// links chats to accounts, and a notifier for status changes.
package bot

import (
	"context"
	"errors"
	"strings"
	"sync"

	"webeye/internal/utils/logger"
)

// State is the dialog window a chat is in.
type State string

const (
	StateMain  State = "main"
	StateLogin State = "login"
	StateInfo  State = "info"
)

// Button callback data.
const (
	ActionLogin = "login"
	ActionInfo  = "info"
	ActionBack  = "back"
)

const (
	textMain  = "Hi! I am the WebEye bot. Keep an eye on the status of your favourite universities."
	textLogin = "Enter the code from your profile page"
	textInfo  = "WebEye watches university websites and tells you when they go down. " +
		"Subscribe to a resource on the site, link this chat and you will get a message on every status change."

	textLinked       = "Your account is linked. You will get notifications here."
	textInvalidToken = "The code is invalid or expired. Try again or press Back."
	textUnavailable  = "The service is unavailable right now. Try again later."
)

// Button is an inline keyboard button. Exactly one of Data and URL is set.
type Button struct {
	Text string
	Data string
	URL  string
}

// Reply is what the bot sends back to a chat.
type Reply struct {
	Text    string
	Buttons [][]Button
}

// Verifier links a chat to the account owning token.
type Verifier interface {
	Verify(ctx context.Context, token string, chatID int64) error
}

// Dialog keeps the state of every chat in memory.
type Dialog struct {
	mu              sync.Mutex
	sessions        map[int64]State
	verifier        Verifier
	registrationURL string
	logger          *logger.Logger
}

func NewDialog(verifier Verifier, registrationURL string) *Dialog {
	return &Dialog{
		sessions:        make(map[int64]State),
		verifier:        verifier,
		registrationURL: registrationURL,
		logger:          logger.New("BOT"),
	}
}

// State returns the window chatID is in. Unknown chats are in main.
func (d *Dialog) State(chatID int64) State {
	d.mu.Lock()
	defer d.mu.Unlock()

	if state, ok := d.sessions[chatID]; ok {
		return state
	}
	return StateMain
}

func (d *Dialog) set(chatID int64, state State) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessions[chatID] = state
}

// Start resets chatID to the main window.
func (d *Dialog) Start(chatID int64) Reply {
	d.set(chatID, StateMain)
	return d.render(StateMain)
}

// HandleButton moves chatID along the dialog for a pressed button.
func (d *Dialog) HandleButton(chatID int64, action string) Reply {
	current := d.State(chatID)

	next := current
	switch {
	case current == StateMain && action == ActionLogin:
		next = StateLogin
	case current == StateMain && action == ActionInfo:
		next = StateInfo
	case action == ActionBack:
		next = StateMain
	}

	d.set(chatID, next)
	return d.render(next)
}

// HandleText treats free text in the login window as a token. Text sent
// in any other window redraws it.
func (d *Dialog) HandleText(ctx context.Context, chatID int64, text string) Reply {
	state := d.State(chatID)
	if state != StateLogin {
		return d.render(state)
	}

	token := strings.TrimSpace(text)
	err := d.verifier.Verify(ctx, token, chatID)
	switch {
	case err == nil:
		d.set(chatID, StateMain)
		reply := d.render(StateMain)
		reply.Text = textLinked + "\n\n" + reply.Text
		return reply
	case errors.Is(err, ErrInvalidToken):
		return Reply{Text: textInvalidToken, Buttons: backRow()}
	default:
		d.logger.Warn("Token verification for chat %d failed: %v", chatID, err)
		return Reply{Text: textUnavailable, Buttons: backRow()}
	}
}

func (d *Dialog) render(state State) Reply {
	switch state {
	case StateLogin:
		return Reply{Text: textLogin, Buttons: backRow()}
	case StateInfo:
		return Reply{Text: textInfo, Buttons: backRow()}
	default:
		return Reply{
			Text: textMain,
			Buttons: [][]Button{
				{{Text: "Register", URL: d.registrationURL}, {Text: "Log in", Data: ActionLogin}},
				{{Text: "About", Data: ActionInfo}},
			},
		}
	}
}

func backRow() [][]Button {
	return [][]Button{{{Text: "Back", Data: ActionBack}}}
}
