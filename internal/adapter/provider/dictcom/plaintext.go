package dictcom

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
)

// ExtractText fetches the page for word and returns its main content as
// plain text with boilerplate (navigation, ads, footers) removed.
// An empty string with a nil error means the page had no main content.
func (p *Provider) ExtractText(ctx context.Context, word string) (string, error) {
	body, err := p.fetch(ctx, word)
	if err != nil {
		return "", err
	}

	pageURL, err := url.Parse(p.EntryURL(word))
	if err != nil {
		return "", fmt.Errorf("dictcom: parse url: %w", err)
	}

	result, err := trafilatura.Extract(bytes.NewReader(body), trafilatura.Options{
		OriginalURL: pageURL,
	})
	if err != nil {
		p.log.DebugContext(ctx, "dictcom extraction found no content",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return "", nil
	}
	if result == nil {
		return "", nil
	}

	return strings.TrimSpace(result.ContentText), nil
}
