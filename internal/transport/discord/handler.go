package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictionary-bot/internal/domain"
	"github.com/heartmarshall/dictionary-bot/internal/presenter"
	"github.com/heartmarshall/dictionary-bot/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type resolver interface {
	Resolve(ctx context.Context, word string) (*domain.WordRecord, error)
}

// sender delivers replies to a channel.
type sender interface {
	Typing(channelID string) error
	SendDocument(channelID string, doc presenter.Document) error
	SendText(channelID, text string) error
}

type cooldown interface {
	Allow(key string) bool
	RetryAfter(key string) time.Duration
}

type commandRecorder interface {
	ObserveCommand(command, result string)
}

// Command results, used for metrics and logs.
const (
	resultOK          = "ok"
	resultNotFound    = "not_found"
	resultMissingWord = "missing_word"
	resultThrottled   = "throttled"
	resultError       = "error"
)

// Message is an incoming chat message, independent of the gateway library.
type Message struct {
	ChannelID   string
	AuthorID    string
	AuthorIsBot bool
	Content     string
}

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	Prefix  string
	Timeout time.Duration
}

// Handler routes prefixed commands to the lookup service and replies.
type Handler struct {
	log      *slog.Logger
	resolver resolver
	cooldown cooldown
	recorder commandRecorder
	prefix   string
	timeout  time.Duration
}

// NewHandler creates a Handler. cd and rec may be nil.
func NewHandler(logger *slog.Logger, cfg HandlerConfig, r resolver, cd cooldown, rec commandRecorder) *Handler {
	return &Handler{
		log:      logger.With("transport", "discord"),
		resolver: r,
		cooldown: cd,
		recorder: rec,
		prefix:   cfg.Prefix,
		timeout:  cfg.Timeout,
	}
}

// Handle processes one message. Messages from bots and messages that are
// not commands are ignored.
func (h *Handler) Handle(ctx context.Context, out sender, msg Message) {
	if msg.AuthorIsBot {
		return
	}
	name, args, ok := parseCommand(h.prefix, msg.Content)
	if !ok {
		return
	}

	ctx = ctxutil.WithRequestID(ctx, uuid.New().String())

	switch name {
	case CommandDefine:
		h.define(ctx, out, msg, args)
	case CommandHelp:
		h.log.InfoContext(ctx, "received help command", slog.String("author", msg.AuthorID))
		h.reply(ctx, out, msg.ChannelID, HelpMessage(h.prefix))
		h.observe(CommandHelp, resultOK)
	default:
		h.log.DebugContext(ctx, "unknown command", slog.String("command", name))
	}
}

func (h *Handler) define(ctx context.Context, out sender, msg Message, args []string) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		h.log.WarnContext(ctx, "missing word argument in define command", slog.String("author", msg.AuthorID))
		h.reply(ctx, out, msg.ChannelID, MissingWordMessage(h.prefix))
		h.observe(CommandDefine, resultMissingWord)
		return
	}
	word := args[0]

	if h.cooldown != nil && !h.cooldown.Allow(msg.AuthorID) {
		wait := h.cooldown.RetryAfter(msg.AuthorID).Round(100 * time.Millisecond)
		h.reply(ctx, out, msg.ChannelID, fmt.Sprintf(cooldownTemplate, wait))
		h.observe(CommandDefine, resultThrottled)
		return
	}

	h.log.InfoContext(ctx, "received define command",
		slog.String("word", word),
		slog.String("author", msg.AuthorID),
	)

	result := h.lookupAndSend(ctx, out, msg.ChannelID, word)
	h.observe(CommandDefine, result)
}

// lookupAndSend resolves word and sends the rendered document. Any fault,
// including a panic below it, becomes the generic failure reply.
func (h *Handler) lookupAndSend(ctx context.Context, out sender, channelID, word string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			h.log.ErrorContext(ctx, "panic in define command",
				slog.String("word", word),
				slog.Any("error", r),
			)
			h.reply(ctx, out, channelID, genericFailureMessage)
			result = resultError
		}
	}()

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	if err := out.Typing(channelID); err != nil {
		h.log.DebugContext(ctx, "typing indicator failed", slog.String("error", err.Error()))
	}

	rec, err := h.resolver.Resolve(ctx, word)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.log.WarnContext(ctx, "could not find definition", slog.String("word", word))
		h.reply(ctx, out, channelID, NotFoundMessage(word))
		return resultNotFound
	case err != nil:
		h.log.ErrorContext(ctx, "unexpected error in define command",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		h.reply(ctx, out, channelID, genericFailureMessage)
		return resultError
	case rec == nil:
		h.log.ErrorContext(ctx, "resolver returned no record", slog.String("word", word))
		h.reply(ctx, out, channelID, genericFailureMessage)
		return resultError
	}

	if err := out.SendDocument(channelID, presenter.Render(word, *rec)); err != nil {
		h.log.ErrorContext(ctx, "send definition failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		h.reply(ctx, out, channelID, genericFailureMessage)
		return resultError
	}

	h.log.InfoContext(ctx, "sent definition", slog.String("word", word))
	return resultOK
}

func (h *Handler) reply(ctx context.Context, out sender, channelID, text string) {
	if err := out.SendText(channelID, text); err != nil {
		h.log.ErrorContext(ctx, "send reply failed", slog.String("error", err.Error()))
	}
}

func (h *Handler) observe(command, result string) {
	if h.recorder != nil {
		h.recorder.ObserveCommand(command, result)
	}
}
