// Package openai translates with an OpenAI chat completion model
package openai

import (
	"context"

	"faqbridge/internal/adapters/translate"
	perr "faqbridge/internal/platform/errors"

	goopenai "github.com/sashabaranov/go-openai"
)

const defaultModel = goopenai.GPT4oMini

// Options configures the translator
type Options struct {
	APIKey string
	Model  string
	// BaseURL points at an OpenAI compatible endpoint, empty uses the public API
	BaseURL string
}

type chatter interface {
	CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

// Translator prompts a chat model for each translation
type Translator struct {
	client chatter
	model  string
}

// New builds a Translator, APIKey is required
func New(o Options) (*Translator, error) {
	if o.APIKey == "" {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "openai api key is required")
	}
	cfg := goopenai.DefaultConfig(o.APIKey)
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	if o.Model == "" {
		o.Model = defaultModel
	}
	return &Translator{client: goopenai.NewClientWithConfig(cfg), model: o.Model}, nil
}

// Translate returns text unchanged when src and dst share a base language
func (t *Translator) Translate(ctx context.Context, text, src, dst string) (string, error) {
	if translate.SameLanguage(src, dst) {
		return text, nil
	}
	rsp, err := t.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       t.model,
		Temperature: 0,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: translate.SystemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: translate.Prompt(text, src, dst)},
		},
	})
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "openai chat completion failed")
	}
	if len(rsp.Choices) == 0 {
		return "", perr.Newf(perr.ErrorCodeUnknown, "openai returned no choices")
	}
	out := translate.CleanReply(rsp.Choices[0].Message.Content)
	if out == "" {
		return "", perr.Newf(perr.ErrorCodeUnknown, "openai returned an empty translation")
	}
	return out, nil
}
