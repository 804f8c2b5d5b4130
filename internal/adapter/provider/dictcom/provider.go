package dictcom

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/dictionary-bot/internal/config"
)

const (
	defaultBaseURL = "https://www.dictionary.com"
	defaultTimeout = 10 * time.Second

	// maxPageSize caps how much of a response body is read.
	maxPageSize = 4 << 20
)

// Provider fetches and parses word pages from dictionary.com.
type Provider struct {
	baseURL    string
	userAgent  string
	selectors  Selectors
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from scraper settings. Empty fields fall
// back to the public site and a ten second timeout.
func NewProvider(cfg config.ScraperConfig, logger *slog.Logger) *Provider {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		baseURL:    baseURL,
		userAgent:  cfg.UserAgent,
		selectors:  DefaultSelectors,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "dictcom"),
	}
}

// WithSelectors returns a copy of the provider that uses sel for the
// structured pass.
func (p *Provider) WithSelectors(sel Selectors) *Provider {
	cp := *p
	cp.selectors = sel
	return &cp
}

// EntryURL returns the page address for an already normalized word.
func (p *Provider) EntryURL(word string) string {
	return p.baseURL + "/browse/" + url.PathEscape(word)
}

// fetch downloads the page for word. Any status outside 2xx is an error.
func (p *Provider) fetch(ctx context.Context, word string) ([]byte, error) {
	reqURL := p.EntryURL(word)

	p.log.DebugContext(ctx, "dictcom request", slog.String("word", word), slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dictcom: create request: %w", err)
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dictcom: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("dictcom: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("dictcom: read body: %w", err)
	}

	p.log.DebugContext(ctx, "dictcom response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
	)

	return body, nil
}
