package openai

import (
	"context"
	"errors"
	"strings"
	"testing"

	perr "faqbridge/internal/platform/errors"
	"faqbridge/internal/platform/testkit"

	goopenai "github.com/sashabaranov/go-openai"
)

type fakeChat struct {
	calls int
	last  goopenai.ChatCompletionRequest
	reply string
	none  bool
	err   error
}

func (f *fakeChat) CreateChatCompletion(_ context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return goopenai.ChatCompletionResponse{}, f.err
	}
	if f.none {
		return goopenai.ChatCompletionResponse{}, nil
	}
	return goopenai.ChatCompletionResponse{
		Choices: []goopenai.ChatCompletionChoice{{Message: goopenai.ChatCompletionMessage{Content: f.reply}}},
	}, nil
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := New(Options{}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v", err)
	}
	tr, err := New(Options{APIKey: "sk", BaseURL: "http://localhost:1/v1"})
	if err != nil {
		t.Fatal(err)
	}
	testkit.MustEqual(t, tr.model, defaultModel)
}

func TestTranslate_PromptsAndCleans(t *testing.T) {
	f := &fakeChat{reply: "  \"Comment obtenir un remboursement ?\"\n"}
	tr := &Translator{client: f, model: "m"}

	out, err := tr.Translate(context.Background(), "How do I get a refund?", "en", "fr")
	if err != nil {
		t.Fatal(err)
	}
	testkit.MustEqual(t, out, "Comment obtenir un remboursement ?")
	testkit.MustEqual(t, f.last.Model, "m")
	if len(f.last.Messages) != 2 || !strings.Contains(f.last.Messages[1].Content, "French") {
		t.Fatalf("messages = %+v", f.last.Messages)
	}
}

func TestTranslate_SameLanguageSkipsModel(t *testing.T) {
	f := &fakeChat{reply: "x"}
	tr := &Translator{client: f, model: "m"}
	out, err := tr.Translate(context.Background(), "hola", "es-MX", "es")
	if err != nil || out != "hola" || f.calls != 0 {
		t.Fatalf("out=%q err=%v calls=%d", out, err, f.calls)
	}
}

func TestTranslate_Failures(t *testing.T) {
	cases := []struct {
		name string
		f    *fakeChat
		code perr.ErrorCode
	}{
		{"transport", &fakeChat{err: errors.New("dial")}, perr.ErrorCodeUnavailable},
		{"no choices", &fakeChat{none: true}, perr.ErrorCodeUnknown},
		{"empty reply", &fakeChat{reply: "  "}, perr.ErrorCodeUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := &Translator{client: tc.f, model: "m"}
			_, err := tr.Translate(context.Background(), "x", "en", "de")
			if !perr.IsCode(err, tc.code) {
				t.Fatalf("err = %v", err)
			}
		})
	}
}
