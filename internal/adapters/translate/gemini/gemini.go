// Package gemini translates with a Google Gemini model
package gemini

import (
	"context"
	"strings"

	"faqbridge/internal/adapters/translate"
	perr "faqbridge/internal/platform/errors"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-1.5-flash"

// Options configures the translator
type Options struct {
	APIKey string
	Model  string
}

type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Translator prompts a Gemini model for each translation
type Translator struct {
	client *genai.Client
	model  generator
}

// New dials the Gemini API, APIKey is required; Close releases the client
func New(ctx context.Context, o Options) (*Translator, error) {
	if o.APIKey == "" {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "gemini api key is required")
	}
	if o.Model == "" {
		o.Model = defaultModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(o.APIKey))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "gemini client init failed")
	}
	model := client.GenerativeModel(o.Model)
	model.SystemInstruction = genai.NewUserContent(genai.Text(translate.SystemPrompt))
	model.SetTemperature(0)
	return &Translator{client: client, model: model}, nil
}

// Translate returns text unchanged when src and dst share a base language
func (t *Translator) Translate(ctx context.Context, text, src, dst string) (string, error) {
	if translate.SameLanguage(src, dst) {
		return text, nil
	}
	rsp, err := t.model.GenerateContent(ctx, genai.Text(translate.Prompt(text, src, dst)))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "gemini generate failed")
	}
	if rsp == nil || len(rsp.Candidates) == 0 || rsp.Candidates[0].Content == nil {
		return "", perr.Newf(perr.ErrorCodeUnknown, "gemini returned no candidates")
	}

	var b strings.Builder
	for _, part := range rsp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	out := translate.CleanReply(b.String())
	if out == "" {
		return "", perr.Newf(perr.ErrorCodeUnknown, "gemini returned an empty translation")
	}
	return out, nil
}

// Close releases the underlying client
func (t *Translator) Close() error {
	if t.client == nil {
		return nil
	}
	return t.client.Close()
}
