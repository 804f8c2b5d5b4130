package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dictionary-bot/internal/adapter/provider/dictcom"
	"github.com/heartmarshall/dictionary-bot/internal/config"
	"github.com/heartmarshall/dictionary-bot/internal/domain"
	"github.com/heartmarshall/dictionary-bot/internal/metrics"
	"github.com/heartmarshall/dictionary-bot/internal/presenter"
	"github.com/heartmarshall/dictionary-bot/internal/ratelimit"
	"github.com/heartmarshall/dictionary-bot/internal/service/lookup"
	"github.com/heartmarshall/dictionary-bot/internal/transport/discord"
	"github.com/heartmarshall/dictionary-bot/internal/transport/rest"
)

// cooldownCleanupInterval is how often idle per-user cooldown entries are swept.
const cooldownCleanupInterval = time.Minute

// Run is the bot entry point. It loads configuration, wires the lookup
// pipeline into the Discord gateway and, when configured, starts the ops
// HTTP server. It blocks until ctx is cancelled or a component fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	if err := cfg.RequireDiscord(); err != nil {
		return err
	}

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("command_prefix", cfg.Discord.CommandPrefix),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.New(reg)

	svc := newLookupService(cfg, logger, collector)

	cooldown := ratelimit.NewCooldown(cfg.Discord.UserCooldown, cooldownCleanupInterval)
	defer cooldown.Stop()

	handler := discord.NewHandler(logger, discord.HandlerConfig{
		Prefix:  cfg.Discord.CommandPrefix,
		Timeout: cfg.Discord.CommandTimeout,
	}, svc, cooldown, collector)

	bot, err := discord.NewBot(cfg.Discord.Token, cfg.Discord.CommandPrefix, handler, logger)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return bot.Run(gctx)
	})

	if cfg.Ops.Enabled() {
		srv := &http.Server{
			Addr:              cfg.Ops.Addr,
			Handler:           rest.NewRouter(rest.NewHealthHandler(bot, BuildVersion()), reg, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			logger.Info("ops server listening", slog.String("addr", cfg.Ops.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("ops server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Ops.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	err = g.Wait()
	logger.Info("application stopped")
	return err
}

// Define performs one lookup for word and writes the rendered document to w
// as plain text. It returns domain.ErrNotFound when no definition exists.
// No Discord credentials are needed.
func Define(ctx context.Context, word string, w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	svc := newLookupService(cfg, logger, metrics.New(prometheus.NewRegistry()))
	return define(ctx, svc, word, w)
}

type resolver interface {
	Resolve(ctx context.Context, query string) (*domain.WordRecord, error)
}

func define(ctx context.Context, svc resolver, word string, w io.Writer) error {
	rec, err := svc.Resolve(ctx, word)
	if err != nil || rec == nil {
		fmt.Fprintln(w, discord.NotFoundMessage(word))
		return domain.ErrNotFound
	}

	_, err = fmt.Fprintln(w, presenter.Render(word, *rec).Text())
	return err
}

func newLookupService(cfg *config.Config, logger *slog.Logger, collector *metrics.Collector) *lookup.Service {
	source := dictcom.NewProvider(cfg.Scraper, logger)
	return lookup.NewService(logger, source, source, ratelimit.NewGate(cfg.Scraper.MinInterval), collector)
}
