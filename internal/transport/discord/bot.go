package discord

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"

	"github.com/heartmarshall/dictionary-bot/internal/presenter"
)

// Bot connects a Handler to the Discord gateway.
type Bot struct {
	session   *discordgo.Session
	handler   *Handler
	prefix    string
	log       *slog.Logger
	connected atomic.Bool

	mu  sync.RWMutex
	ctx context.Context
}

// NewBot creates a gateway session for token. The connection is opened by Run.
func NewBot(token, prefix string, handler *Handler, logger *slog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord: create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentGuildMessages |
		discordgo.IntentDirectMessages |
		discordgo.IntentMessageContent

	b := &Bot{
		session: session,
		handler: handler,
		prefix:  prefix,
		log:     logger.With("transport", "discord"),
		ctx:     context.Background(),
	}
	session.AddHandler(b.onReady)
	session.AddHandler(b.onDisconnect)
	session.AddHandler(b.onMessageCreate)
	return b, nil
}

// Run opens the gateway connection and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	b.mu.Lock()
	b.ctx = ctx
	b.mu.Unlock()

	b.log.InfoContext(ctx, "starting discord bot")
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord: open session: %w", err)
	}

	<-ctx.Done()

	b.connected.Store(false)
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("discord: close session: %w", err)
	}
	b.log.Info("discord bot stopped")
	return nil
}

// Connected reports whether the gateway session is ready.
func (b *Bot) Connected() bool {
	return b.connected.Load()
}

// Presence returns the "listening to" status shown by the bot.
func Presence(prefix string) string {
	return prefix + CommandDefine + " commands"
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.connected.Store(true)
	b.log.Info("connected to discord",
		slog.String("user", r.User.Username),
		slog.Int("guilds", len(r.Guilds)),
	)
	if err := s.UpdateListeningStatus(Presence(b.prefix)); err != nil {
		b.log.Warn("update presence failed", slog.String("error", err.Error()))
	}
}

func (b *Bot) onDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	b.connected.Store(false)
	b.log.Warn("disconnected from discord")
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	msg, ok := messageFromEvent(m)
	if !ok {
		return
	}
	b.mu.RLock()
	ctx := b.ctx
	b.mu.RUnlock()

	b.handler.Handle(ctx, sessionSender{s: s}, msg)
}

// messageFromEvent converts a gateway event; ok is false for events without an author.
func messageFromEvent(m *discordgo.MessageCreate) (Message, bool) {
	if m == nil || m.Message == nil || m.Author == nil {
		return Message{}, false
	}
	return Message{
		ChannelID:   m.ChannelID,
		AuthorID:    m.Author.ID,
		AuthorIsBot: m.Author.Bot,
		Content:     m.Content,
	}, true
}

// sessionSender delivers replies through a discordgo session.
type sessionSender struct {
	s *discordgo.Session
}

func (ss sessionSender) Typing(channelID string) error {
	return ss.s.ChannelTyping(channelID)
}

func (ss sessionSender) SendDocument(channelID string, doc presenter.Document) error {
	_, err := ss.s.ChannelMessageSendEmbed(channelID, ToEmbed(doc))
	return err
}

func (ss sessionSender) SendText(channelID, text string) error {
	_, err := ss.s.ChannelMessageSend(channelID, text)
	return err
}
