// Package telegram is a thin client for the three bot API calls the webhook
// makes: sendMessage, editMessageText and answerCallbackQuery.
package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	tbapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// requester is the slice of tbapi.BotAPI the client needs, split out for tests
type requester interface {
	Request(c tbapi.Chattable) (*tbapi.APIResponse, error)
}

// Client performs outbound telegram calls with bounded retries. Replies are
// fire-and-forget from the webhook's point of view, a failure is reported to
// the dispatcher but never to the provider.
type Client struct {
	api requester
}

// New authorizes against the bot API with the given token.
func New(token string) (*Client, error) {
	api, err := tbapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram api client: %w", err)
	}
	api.Debug = false
	return &Client{api: api}, nil
}

// SendMessage posts a new markdown message with an optional inline keyboard.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, keyboard *tbapi.InlineKeyboardMarkup) error {
	msg := tbapi.NewMessage(chatID, text)
	msg.ParseMode = tbapi.ModeMarkdown
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}
	return c.request(ctx, msg)
}

// EditMessage replaces a previously sent message's text and keyboard in place.
func (c *Client) EditMessage(ctx context.Context, chatID int64, messageID int, text string, keyboard *tbapi.InlineKeyboardMarkup) error {
	var msg tbapi.EditMessageTextConfig
	if keyboard != nil {
		msg = tbapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *keyboard)
	} else {
		msg = tbapi.NewEditMessageText(chatID, messageID, text)
	}
	msg.ParseMode = tbapi.ModeMarkdown
	return c.request(ctx, msg)
}

// AnswerCallback acknowledges a button press, stopping the client-side
// loading indicator.
func (c *Client) AnswerCallback(ctx context.Context, callbackID string) error {
	return c.request(ctx, tbapi.NewCallback(callbackID, ""))
}

// request performs the API call with a short backoff, enough to ride out a
// transient telegram hiccup without holding the webhook open for long.
func (c *Client) request(ctx context.Context, m tbapi.Chattable) error {
	retrier := repeater.NewBackoff(3, 100*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		_, err := c.api.Request(m)
		return err
	})
	if err != nil {
		return fmt.Errorf("telegram request: %w", err)
	}
	return nil
}
