// Package telegram sends operator notifications through the Telegram Bot API.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"portfolio/backend/internal/logger"
	"portfolio/backend/internal/model"
)

// ErrNotifierDisabled is returned when the bot token or chat id is missing.
var ErrNotifierDisabled = errors.New("telegram notifier is not configured")

type Config struct {
	Token  string
	ChatID string
	// APIBase overrides the Bot API server, e.g. a local bot-api instance.
	APIBase    string
	HTTPClient *http.Client
}

type Notifier struct {
	bot    *bot.Bot
	token  string
	chatID string
}

// NewNotifier builds a notifier. Missing credentials yield a disabled
// notifier, not an error. No request is made until the first notification.
func NewNotifier(cfg Config) (*Notifier, error) {
	n := &Notifier{
		token:  strings.TrimSpace(cfg.Token),
		chatID: strings.TrimSpace(cfg.ChatID),
	}
	if !n.Enabled() {
		return n, nil
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	opts := []bot.Option{
		bot.WithSkipGetMe(),
		bot.WithHTTPClient(client.Timeout, client),
	}
	if cfg.APIBase != "" {
		opts = append(opts, bot.WithServerURL(strings.TrimRight(cfg.APIBase, "/")))
	}
	b, err := bot.New(n.token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", n.redact(err))
	}
	n.bot = b
	return n, nil
}

func (n *Notifier) Enabled() bool {
	return n.token != "" && n.chatID != ""
}

// NotifyContact posts a summary of contact to the configured chat.
func (n *Notifier) NotifyContact(ctx context.Context, contact model.Contact) error {
	if !n.Enabled() {
		logger.Warn("telegram credentials not configured", "module", "telegram", "action", "notify", "resource", "contact", "result", "skipped")
		return ErrNotifierDisabled
	}

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    n.chatID,
		Text:      FormatContact(contact),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("send message: %w", n.redact(err))
	}

	logger.Info("telegram notification sent", "module", "telegram", "action", "notify", "resource", "contact", "result", "ok", "contact_id", contact.ID)
	return nil
}

// redact strips the bot token, which transport errors embed in the request URL.
func (n *Notifier) redact(err error) error {
	if n.token == "" || !strings.Contains(err.Error(), n.token) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), n.token, "<token>"))
}

// FormatContact renders contact as a Telegram HTML message with every
// visitor-supplied field escaped.
func FormatContact(contact model.Contact) string {
	var b strings.Builder
	b.WriteString("<b>🎯 New Contact Form Submission</b>\n\n")
	fmt.Fprintf(&b, "<b>Name:</b> %s\n", html.EscapeString(contact.Name))
	fmt.Fprintf(&b, "<b>Email:</b> %s\n", html.EscapeString(contact.Email))
	if contact.Subject != nil && *contact.Subject != "" {
		fmt.Fprintf(&b, "<b>Subject:</b> %s\n", html.EscapeString(*contact.Subject))
	}
	fmt.Fprintf(&b, "\n<b>Message:</b>\n%s\n\n", html.EscapeString(contact.Message))

	received := contact.CreatedAt
	if received.IsZero() {
		received = time.Now()
	}
	fmt.Fprintf(&b, "<i>Received at: %s</i>", received.UTC().Format("2006-01-02 15:04:05 UTC"))
	return b.String()
}
