// Package bot turns inbound telegram updates into exactly one outbound side
// effect, a sent or edited menu message. It owns the command grammar, the
// callback action routing and the menu screens.
package bot

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	tbapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mailgram/mailgram/pkg/mailbox"
	"github.com/mailgram/mailgram/pkg/prefs"
)

//go:generate moq -out mocks/transport.go -pkg mocks -skip-ensure -fmt goimports . Transport
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/domains.go -pkg mocks -skip-ensure -fmt goimports . DomainSource

// Transport performs the outbound telegram calls
type Transport interface {
	SendMessage(ctx context.Context, chatID int64, text string, keyboard *tbapi.InlineKeyboardMarkup) error
	EditMessage(ctx context.Context, chatID int64, messageID int, text string, keyboard *tbapi.InlineKeyboardMarkup) error
	AnswerCallback(ctx context.Context, callbackID string) error
}

// Store keeps per-user preferences, Get validates against the allow-list
type Store interface {
	Get(userID int64, allowed []string) prefs.Preference
	Set(userID int64, domain string) prefs.Preference
}

// DomainSource provides the domain allow-list, read at request time
type DomainSource interface {
	Domains() []string
}

// Dispatcher classifies updates and drives screen rendering. It returns the
// internal error to the caller so tests can assert on it, the webhook layer
// logs and swallows it and always acks the provider.
type Dispatcher struct {
	transport Transport
	store     Store
	domains   DomainSource
}

// New creates a dispatcher with all collaborators injected.
func New(transport Transport, store Store, domains DomainSource) *Dispatcher {
	return &Dispatcher{transport: transport, store: store, domains: domains}
}

// Handle processes a single update. Updates that are neither a text message
// nor a callback, or that lack chat/user identity, are a silent no-op.
func (d *Dispatcher) Handle(ctx context.Context, upd tbapi.Update) error {
	switch {
	case upd.Message != nil:
		return d.handleMessage(ctx, upd.Message)
	case upd.CallbackQuery != nil:
		return d.handleCallback(ctx, upd.CallbackQuery)
	}
	return nil // unknown update shape, deliberately ignored
}

// handleMessage implements the text command grammar, exact and case-sensitive:
// /start and /menu open the home screen, /help shows help, anything else gets
// a static hint.
func (d *Dispatcher) handleMessage(ctx context.Context, msg *tbapi.Message) error {
	if msg.Chat == nil || msg.From == nil {
		return nil
	}
	chatID, userID := msg.Chat.ID, msg.From.ID

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch text {
	case "/start", "/menu":
		return d.deliver(ctx, chatID, 0, homeScreen(d.pref(userID)))
	case "/help":
		return d.deliver(ctx, chatID, 0, helpScreen())
	}
	return d.transport.SendMessage(ctx, chatID, "Use /menu to open the bot menu.", nil)
}

// handleCallback routes a button press. The callback is acknowledged first,
// unconditionally, so the client-side loading indicator stops even if the
// rest of the handling fails.
func (d *Dispatcher) handleCallback(ctx context.Context, cb *tbapi.CallbackQuery) error {
	if cb.Message == nil || cb.Message.Chat == nil || cb.From == nil {
		return nil
	}
	chatID, userID := cb.Message.Chat.ID, cb.From.ID
	messageID := cb.Message.MessageID

	if err := d.transport.AnswerCallback(ctx, cb.ID); err != nil {
		log.Printf("[WARN] failed to answer callback %s: %v", cb.ID, err)
	}

	act, arg := parseAction(cb.Data)
	switch act {
	case actionHome:
		return d.deliver(ctx, chatID, messageID, homeScreen(d.pref(userID)))
	case actionGenerate:
		addr := mailbox.New(d.pref(userID).Domain)
		return d.deliver(ctx, chatID, messageID, generateScreen(addr))
	case actionInbox:
		return d.deliver(ctx, chatID, messageID, inboxScreen())
	case actionSettings:
		return d.deliver(ctx, chatID, messageID, d.settings(userID))
	case actionHelp:
		return d.deliver(ctx, chatID, messageID, helpScreen())
	case actionDomain:
		// a stale button may carry a domain that left the allow-list,
		// ignore it and re-render settings unchanged
		if d.allowed(arg) {
			d.store.Set(userID, arg)
		}
		return d.deliver(ctx, chatID, messageID, d.settings(userID))
	}
	return d.transport.SendMessage(ctx, chatID, "Unknown action. Use /menu.", nil)
}

// deliver sends the screen, or edits it in place when the triggering message
// is known. Edit-in-place keeps button navigation on a single message.
func (d *Dispatcher) deliver(ctx context.Context, chatID int64, messageID int, s screen) error {
	if messageID == 0 {
		if err := d.transport.SendMessage(ctx, chatID, s.text, s.keyboard); err != nil {
			return fmt.Errorf("send screen: %w", err)
		}
		return nil
	}
	if err := d.transport.EditMessage(ctx, chatID, messageID, s.text, s.keyboard); err != nil {
		return fmt.Errorf("edit screen: %w", err)
	}
	return nil
}

func (d *Dispatcher) pref(userID int64) prefs.Preference {
	return d.store.Get(userID, d.domains.Domains())
}

func (d *Dispatcher) settings(userID int64) screen {
	allowed := d.domains.Domains()
	return settingsScreen(d.store.Get(userID, allowed), allowed)
}

func (d *Dispatcher) allowed(domain string) bool {
	return slices.Contains(d.domains.Domains(), domain)
}
