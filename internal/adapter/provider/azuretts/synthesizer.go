// Package azuretts synthesizes speech with the Azure Cognitive Services
// text-to-speech REST API.
package azuretts

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Synthesizer renders Dutch sentences to audio.
type Synthesizer struct {
	endpoint   string
	key        string
	voice      string
	format     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewSynthesizer creates a Synthesizer for the given Azure region.
func NewSynthesizer(key, region, voice, format string, logger *slog.Logger) *Synthesizer {
	endpoint := fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", region)
	return NewSynthesizerWithURL(endpoint, key, voice, format, logger)
}

// NewSynthesizerWithURL creates a Synthesizer with a custom endpoint (for testing).
func NewSynthesizerWithURL(endpoint, key, voice, format string, logger *slog.Logger) *Synthesizer {
	return &Synthesizer{
		endpoint:   endpoint,
		key:        key,
		voice:      voice,
		format:     format,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "azuretts"),
	}
}

// Synthesize returns the audio bytes for text in the configured format.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := s.ssml(text)
	if err != nil {
		return nil, fmt.Errorf("azuretts: build ssml: %w", err)
	}

	s.log.DebugContext(ctx, "azuretts request", slog.String("voice", s.voice), slog.Int("chars", len(text)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("azuretts: create request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", s.key)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", s.format)
	req.Header.Set("User-Agent", "nlvocab")

	// A failed synthesis fails the acceptance; it is never retried.
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("azuretts: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("azuretts: unexpected status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("azuretts: read body: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("azuretts: empty audio")
	}
	return audio, nil
}

// ssml wraps text in a single-voice SSML document.
func (s *Synthesizer) ssml(text string) (string, error) {
	var escaped strings.Builder
	if err := xml.EscapeText(&escaped, []byte(text)); err != nil {
		return "", err
	}
	lang := "nl-NL"
	if i := strings.LastIndex(s.voice, "-"); i > 0 {
		lang = s.voice[:i]
	}
	return fmt.Sprintf(
		`<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis" xml:lang="%s"><voice name="%s">%s</voice></speak>`,
		lang, s.voice, escaped.String(),
	), nil
}
