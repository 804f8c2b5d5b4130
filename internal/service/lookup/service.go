package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/dictionary-bot/internal/domain"
	"github.com/heartmarshall/dictionary-bot/internal/metrics"
	"github.com/heartmarshall/dictionary-bot/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

// textExtractor returns the boilerplate-free text of a word page.
type textExtractor interface {
	ExtractText(ctx context.Context, word string) (string, error)
}

// pageParser runs the selector pass over a word page.
type pageParser interface {
	ParseEntry(ctx context.Context, word string) (*provider.PageResult, error)
}

type gate interface {
	Wait(ctx context.Context) error
}

type recorder interface {
	ObserveLookup(outcome string, d time.Duration)
}

// Service resolves queries into word records: special cases from a static
// table, everything else from the remote dictionary with a plain-text
// fallback when the page markup yields no definitions.
type Service struct {
	log      *slog.Logger
	text     textExtractor
	pages    pageParser
	gate     gate
	recorder recorder
}

// NewService creates a lookup Service. rec may be nil.
func NewService(logger *slog.Logger, text textExtractor, pages pageParser, g gate, rec recorder) *Service {
	return &Service{
		log:      logger.With("service", "lookup"),
		text:     text,
		pages:    pages,
		gate:     g,
		recorder: rec,
	}
}

// Resolve returns the record for query or domain.ErrNotFound. Every remote
// fault collapses into ErrNotFound; the cause is logged, not returned.
func (s *Service) Resolve(ctx context.Context, query string) (*domain.WordRecord, error) {
	start := time.Now()

	if rec, ok := specialCase(query); ok {
		s.log.InfoContext(ctx, "special case hit", slog.String("word", query))
		s.observe(metrics.OutcomeSpecial, start)
		return &rec, nil
	}

	rec, outcome, err := s.fetch(ctx, query)
	s.observe(outcome, start)
	if err != nil {
		s.log.WarnContext(ctx, "word not found",
			slog.String("word", query),
			slog.String("error", err.Error()),
		)
		return nil, domain.ErrNotFound
	}

	s.log.InfoContext(ctx, "word resolved",
		slog.String("word", query),
		slog.String("outcome", outcome),
		slog.Int("definitions", len(rec.Definitions)),
	)
	return rec, nil
}

// fetch runs both remote passes. The returned error explains a not-found
// outcome for the log.
func (s *Service) fetch(ctx context.Context, query string) (*domain.WordRecord, string, error) {
	word := domain.NormalizeText(query)
	if word == "" {
		return nil, metrics.OutcomeNotFound, fmt.Errorf("empty query: %w", domain.ErrValidation)
	}

	if err := s.gate.Wait(ctx); err != nil {
		return nil, metrics.OutcomeNotFound, fmt.Errorf("rate gate: %w", err)
	}

	s.log.DebugContext(ctx, "fetching definition", slog.String("word", word))

	text, err := s.text.ExtractText(ctx, word)
	if err != nil {
		return nil, metrics.OutcomeNotFound, fmt.Errorf("extract text: %w", err)
	}
	if text == "" {
		return nil, metrics.OutcomeNotFound, errors.New("no page content")
	}

	page, err := s.pages.ParseEntry(ctx, word)
	if err != nil {
		return nil, metrics.OutcomeNotFound, fmt.Errorf("parse entry: %w", err)
	}
	if page == nil {
		page = &provider.PageResult{}
	}

	outcome := metrics.OutcomeFound
	definitions := page.Definitions
	if page.Empty() {
		definitions = HeuristicDefinitions(text)
		outcome = metrics.OutcomeFallback
		s.log.DebugContext(ctx, "structured pass empty, using plain-text fallback",
			slog.String("word", word),
			slog.Int("definitions", len(definitions)),
		)
	}

	rec := domain.NewWordRecord(definitions, page.Examples, page.Etymology, page.UsageNotes)
	if !rec.Valid() {
		return nil, metrics.OutcomeNotFound, errors.New("no definitions on page")
	}

	return &rec, outcome, nil
}

func (s *Service) observe(outcome string, start time.Time) {
	if s.recorder != nil {
		s.recorder.ObserveLookup(outcome, time.Since(start))
	}
}
