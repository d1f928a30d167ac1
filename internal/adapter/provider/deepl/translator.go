// Package deepl translates sentences with the DeepL REST API (v2).
package deepl

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

const (
	freeBaseURL = "https://api-free.deepl.com"
	proBaseURL  = "https://api.deepl.com"

	sourceLang = "NL"
	targetLang = "EN-US"

	// statusQuotaExceeded is DeepL's non-standard "quota exceeded" status.
	statusQuotaExceeded = 456
)

// Translator calls the DeepL translate endpoint.
type Translator struct {
	baseURL    string
	authKey    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewTranslator creates a Translator. Keys ending in ":fx" belong to the
// free plan and use the free API host.
func NewTranslator(authKey string, logger *slog.Logger) *Translator {
	baseURL := proBaseURL
	if strings.HasSuffix(authKey, ":fx") {
		baseURL = freeBaseURL
	}
	return NewTranslatorWithURL(baseURL, authKey, logger)
}

// NewTranslatorWithURL creates a Translator with a custom base URL (for testing).
func NewTranslatorWithURL(baseURL, authKey string, logger *slog.Logger) *Translator {
	return &Translator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authKey:    authKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "deepl"),
	}
}

type translateRequest struct {
	Text       []string `json:"text"`
	SourceLang string   `json:"source_lang"`
	TargetLang string   `json:"target_lang"`
}

type translateResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// Translate translates a Dutch sentence to American English.
func (t *Translator) Translate(ctx context.Context, sentence string) (string, error) {
	payload, err := json.Marshal(translateRequest{
		Text:       []string{sentence},
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		return "", fmt.Errorf("deepl: encode request: %w", err)
	}

	t.log.DebugContext(ctx, "deepl request", slog.Int("chars", len(sentence)))

	resp, err := t.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/v2/translate", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "DeepL-Auth-Key "+t.authKey)
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return "", fmt.Errorf("deepl: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return "", fmt.Errorf("deepl: %w", domain.ErrUnauthorized)
	case statusQuotaExceeded:
		return "", fmt.Errorf("deepl: %w", domain.ErrQuotaExceeded)
	default:
		return "", fmt.Errorf("deepl: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("deepl: read body: %w", err)
	}

	var r translateResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return "", fmt.Errorf("deepl: decode json: %w", err)
	}
	if len(r.Translations) == 0 {
		return "", fmt.Errorf("deepl: empty response")
	}

	return r.Translations[0].Text, nil
}

const retryBackoff = 500 * time.Millisecond

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (t *Translator) doWithRetry(ctx context.Context, newReq func() (*http.Request, error)) (*http.Response, error) {
	req, err := newReq()
	if err != nil {
		return nil, err
	}
	resp, err := t.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	t.log.WarnContext(ctx, "deepl retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	if err := ctxutil.Sleep(ctx, retryBackoff); err != nil {
		return nil, err
	}

	if req, err = newReq(); err != nil {
		return nil, err
	}
	return t.httpClient.Do(req)
}
