// Package llmtranslate translates sentences with Claude through the
// Anthropic messages API.
package llmtranslate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const maxTokens = 512

// Translator asks the model for an English translation of one sentence.
type Translator struct {
	client anthropic.Client
	model  string
	log    *slog.Logger
}

// NewTranslator creates a Translator for the given API key and model.
func NewTranslator(apiKey, model string, logger *slog.Logger) *Translator {
	return newTranslator(model, logger, option.WithAPIKey(apiKey), option.WithMaxRetries(1))
}

// NewTranslatorWithURL creates a Translator with a custom base URL (for testing).
func NewTranslatorWithURL(baseURL, apiKey, model string, logger *slog.Logger) *Translator {
	return newTranslator(model, logger,
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
}

func newTranslator(model string, logger *slog.Logger, opts ...option.RequestOption) *Translator {
	return &Translator{
		client: anthropic.NewClient(opts...),
		model:  model,
		log:    logger.With("adapter", "llmtranslate"),
	}
}

// Translate returns the English translation of a Dutch sentence.
func (t *Translator) Translate(ctx context.Context, sentence string) (string, error) {
	msg, err := t.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(t.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(sentence))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("llmtranslate: api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("llmtranslate: empty response")
	}

	text := strings.TrimSpace(msg.Content[0].Text)
	if text == "" {
		return "", fmt.Errorf("llmtranslate: empty translation")
	}

	t.log.DebugContext(ctx, "llm translation",
		slog.Int("input_tokens", int(msg.Usage.InputTokens)),
		slog.Int("output_tokens", int(msg.Usage.OutputTokens)),
	)
	return text, nil
}

func buildPrompt(sentence string) string {
	return fmt.Sprintf(`Translate the following Dutch sentence into natural American English.

Dutch: %s

Output ONLY the English translation on a single line, no quotes, no explanations.`, sentence)
}
