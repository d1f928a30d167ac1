// Package wiktionary looks up definitions through the Wiktionary REST
// definition endpoint.
package wiktionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/heartmarshall/nlvocab/internal/domain"
	"github.com/heartmarshall/nlvocab/pkg/ctxutil"
)

const (
	defaultBaseURL = "https://en.wiktionary.org/api/rest_v1/page/definition"

	// maxFormDepth limits how many levels of form-of links are resolved.
	maxFormDepth = 1
)

// Provider fetches etymology groups for a term in one language.
type Provider struct {
	baseURL    string
	language   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default Wiktionary URL.
func NewProvider(language string, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, language, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, language string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "wiktionary"),
	}
}

// Lookup returns the etymology groups of term. Definitions of the form
// "plural of X" carry X as a form word with its own groups, one level
// deep. A missing page, a bad status or a transport failure yields nil.
// Only a cancelled context is returned as an error.
func (p *Provider) Lookup(ctx context.Context, term string) ([]domain.Etymology, error) {
	w := &walk{
		path:     map[string]bool{term: true},
		resolved: make(map[string][]domain.Etymology),
	}
	etys := p.lookup(ctx, term, w, 0)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return etys, nil
}

// walk is the state of one Lookup. path holds the terms being resolved
// above the current one; a link back into it is a cycle. resolved keeps
// finished form words so a word linked from several definitions is
// fetched once and shown under each of them.
type walk struct {
	path     map[string]bool
	resolved map[string][]domain.Etymology
}

func (p *Provider) lookup(ctx context.Context, term string, w *walk, depth int) []domain.Etymology {
	usages, err := p.fetch(ctx, term)
	if err != nil {
		if ctx.Err() == nil {
			p.log.WarnContext(ctx, "wiktionary lookup failed", slog.String("term", term), slog.String("error", err.Error()))
		}
		return nil
	}
	if len(usages) == 0 {
		return nil
	}

	etys := make([]domain.Etymology, 0, len(usages))
	for _, u := range usages {
		ety := domain.Etymology{PartOfSpeech: u.PartOfSpeech}
		for _, d := range u.Definitions {
			text, links := parseDefinition(d.Definition)
			if text == "" {
				continue
			}
			def := domain.Definition{Text: text}
			if depth < maxFormDepth {
				for _, link := range links {
					if w.path[link] {
						continue
					}
					formEtys, ok := w.resolved[link]
					if !ok {
						w.path[link] = true
						formEtys = p.lookup(ctx, link, w, depth+1)
						delete(w.path, link)
						w.resolved[link] = formEtys
					}
					def.FormWords = append(def.FormWords, domain.FormWord{
						Text:        link,
						Etymologies: formEtys,
					})
				}
			}
			ety.Definitions = append(ety.Definitions, def)
		}
		if len(ety.Definitions) > 0 {
			etys = append(etys, ety)
		}
	}
	if len(etys) == 0 {
		return nil
	}
	return etys
}

// fetch returns the usages for the configured language.
// A 404 yields nil, nil.
func (p *Provider) fetch(ctx context.Context, term string) ([]apiUsage, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(term)

	p.log.DebugContext(ctx, "wiktionary request", slog.String("term", term))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("wiktionary: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "nlvocab")

	resp, err := p.doWithRetry(ctx, req, term)
	if err != nil {
		return nil, fmt.Errorf("wiktionary: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wiktionary: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wiktionary: read body: %w", err)
	}

	var r apiResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("wiktionary: decode json: %w", err)
	}
	return r[p.language], nil
}

const retryBackoff = 500 * time.Millisecond

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, term string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "wiktionary retry", slog.String("term", term), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	if err := ctxutil.Sleep(ctx, retryBackoff); err != nil {
		return nil, err
	}

	return p.httpClient.Do(req)
}

// parseDefinition returns the plain text of a definition's HTML and the
// lemmas it links to as a form of.
func parseDefinition(html string) (string, []string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html), nil
	}

	var links []string
	doc.Find(".form-of-definition-link a").Each(func(_ int, s *goquery.Selection) {
		target, ok := s.Attr("title")
		if !ok || target == "" {
			target = s.Text()
		}
		if target = strings.TrimSpace(target); target != "" {
			links = append(links, target)
		}
	})

	text := strings.Join(strings.Fields(doc.Text()), " ")
	return text, links
}
