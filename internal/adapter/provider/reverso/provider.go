// Package reverso fetches bilingual example sentences from the Reverso
// Context query service.
package reverso

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/heartmarshall/nlvocab/internal/domain"
	"github.com/heartmarshall/nlvocab/pkg/ctxutil"
)

const (
	defaultBaseURL = "https://context.reverso.net/bst-query-service"
	userAgent      = "Mozilla/5.0 (X11; Linux x86_64) nlvocab"
)

// Provider streams example sentences page by page.
type Provider struct {
	baseURL    string
	sourceLang string
	targetLang string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default Reverso URL.
func NewProvider(sourceLang, targetLang string, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, sourceLang, targetLang, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, sourceLang, targetLang string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		sourceLang: sourceLang,
		targetLang: targetLang,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "reverso"),
	}
}

// Examples yields the examples for word lazily, fetching the next page
// only when the consumer asks for more. Iteration ends after the last
// page or on the first error.
func (p *Provider) Examples(ctx context.Context, word string) iter.Seq2[domain.Example, error] {
	return func(yield func(domain.Example, error) bool) {
		for page := 1; ; page++ {
			resp, err := p.fetchPage(ctx, word, page)
			if err != nil {
				yield(domain.Example{}, err)
				return
			}
			for _, item := range resp.List {
				ex := domain.Example{Source: stripMarkup(item.SourceText), Target: stripMarkup(item.TargetText)}
				if !yield(ex, nil) {
					return
				}
			}
			if len(resp.List) == 0 || page >= resp.Pages {
				return
			}
		}
	}
}

func (p *Provider) fetchPage(ctx context.Context, word string, page int) (*apiResponse, error) {
	payload, err := json.Marshal(apiRequest{
		SourceText: word,
		SourceLang: p.sourceLang,
		TargetLang: p.targetLang,
		Page:       page,
	})
	if err != nil {
		return nil, fmt.Errorf("reverso: encode request: %w", err)
	}

	p.log.DebugContext(ctx, "reverso request", slog.String("word", word), slog.Int("page", page))

	resp, err := p.doWithRetry(ctx, word, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
		req.Header.Set("User-Agent", userAgent)
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("reverso: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reverso: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reverso: read body: %w", err)
	}

	var r apiResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("reverso: decode json: %w", err)
	}

	p.log.DebugContext(ctx, "reverso response",
		slog.String("word", word),
		slog.Int("page", page),
		slog.Int("pages", r.Pages),
		slog.Int("examples", len(r.List)),
	)
	return &r, nil
}

const retryBackoff = 500 * time.Millisecond

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, word string, newReq func() (*http.Request, error)) (*http.Response, error) {
	req, err := newReq()
	if err != nil {
		return nil, err
	}
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "reverso retry", slog.String("word", word), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	if err := ctxutil.Sleep(ctx, retryBackoff); err != nil {
		return nil, err
	}

	if req, err = newReq(); err != nil {
		return nil, err
	}
	return p.httpClient.Do(req)
}

// stripMarkup removes the highlight tags Reverso puts around the query
// word and decodes HTML entities.
func stripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
