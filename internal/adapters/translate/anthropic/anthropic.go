// Package anthropic translates with a Claude model through the Messages API
package anthropic

import (
	"context"
	"strings"

	"faqbridge/internal/adapters/translate"
	perr "faqbridge/internal/platform/errors"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	defaultModel     = "claude-3-5-haiku-latest"
	defaultMaxTokens = 1024
)

// Options configures the translator
type Options struct {
	APIKey    string
	Model     string
	MaxTokens int64
	BaseURL   string
}

type messenger interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// Translator prompts a Claude model for each translation
type Translator struct {
	messages  messenger
	model     string
	maxTokens int64
}

// New builds a Translator, APIKey is required
func New(o Options) (*Translator, error) {
	if o.APIKey == "" {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "anthropic api key is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(o.APIKey)}
	if o.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(o.BaseURL))
	}
	if o.Model == "" {
		o.Model = defaultModel
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = defaultMaxTokens
	}
	client := sdk.NewClient(opts...)
	return &Translator{messages: &client.Messages, model: o.Model, maxTokens: o.MaxTokens}, nil
}

// Translate returns text unchanged when src and dst share a base language
func (t *Translator) Translate(ctx context.Context, text, src, dst string) (string, error) {
	if translate.SameLanguage(src, dst) {
		return text, nil
	}
	rsp, err := t.messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(t.model),
		MaxTokens: t.maxTokens,
		System:    []sdk.TextBlockParam{{Text: translate.SystemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(translate.Prompt(text, src, dst))),
		},
	})
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "anthropic messages call failed")
	}

	var b strings.Builder
	for _, block := range rsp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	out := translate.CleanReply(b.String())
	if out == "" {
		return "", perr.Newf(perr.ErrorCodeUnknown, "anthropic returned an empty translation")
	}
	return out, nil
}
