// Package spacy lemmatizes text through a spaCy HTTP sidecar
// (nl_core_news_lg). The sidecar accepts {"text": ...} on POST /lemmatize
// and answers {"tokens": [{"text": ..., "lemma": ...}]}.
package spacy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/nlvocab/internal/domain"
	"github.com/heartmarshall/nlvocab/pkg/ctxutil"
)

// Client calls the lemmatization sidecar.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the sidecar at baseURL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "spacy"),
	}
}

type request struct {
	Text string `json:"text"`
}

type response struct {
	Tokens []struct {
		Text  string `json:"text"`
		Lemma string `json:"lemma"`
	} `json:"tokens"`
}

// Lemmatize returns the sidecar's tokens for text. Whitespace-only tokens
// are dropped.
func (c *Client) Lemmatize(ctx context.Context, text string) ([]domain.Token, error) {
	payload, err := json.Marshal(request{Text: text})
	if err != nil {
		return nil, fmt.Errorf("spacy: encode request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/lemmatize", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("spacy: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spacy: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("spacy: read body: %w", err)
	}

	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("spacy: decode json: %w", err)
	}

	tokens := make([]domain.Token, 0, len(r.Tokens))
	for _, t := range r.Tokens {
		if strings.TrimSpace(t.Text) == "" {
			continue
		}
		lemma := t.Lemma
		if lemma == "" {
			lemma = t.Text
		}
		tokens = append(tokens, domain.Token{Lemma: lemma, Surface: t.Text})
	}
	return tokens, nil
}

const retryBackoff = 500 * time.Millisecond

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, newReq func() (*http.Request, error)) (*http.Response, error) {
	req, err := newReq()
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "spacy retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	if err := ctxutil.Sleep(ctx, retryBackoff); err != nil {
		return nil, err
	}

	if req, err = newReq(); err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}
