package anthropic

import (
	"context"
	"errors"
	"testing"

	perr "faqbridge/internal/platform/errors"
	"faqbridge/internal/platform/testkit"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type fakeMessages struct {
	calls  int
	last   sdk.MessageNewParams
	blocks []sdk.ContentBlockUnion
	err    error
}

func (f *fakeMessages) New(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	f.calls++
	f.last = body
	if f.err != nil {
		return nil, f.err
	}
	return &sdk.Message{Content: f.blocks}, nil
}

func TestNew_Defaults(t *testing.T) {
	if _, err := New(Options{}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v", err)
	}
	tr, err := New(Options{APIKey: "k"})
	if err != nil {
		t.Fatal(err)
	}
	testkit.MustEqual(t, tr.model, defaultModel)
	testkit.MustEqual(t, tr.maxTokens, int64(defaultMaxTokens))
}

func TestTranslate_JoinsTextBlocks(t *testing.T) {
	f := &fakeMessages{blocks: []sdk.ContentBlockUnion{
		{Type: "text", Text: "Wie erhalte ich "},
		{Type: "thinking"},
		{Type: "text", Text: "eine Rückerstattung?"},
	}}
	tr := &Translator{messages: f, model: "m", maxTokens: 64}

	out, err := tr.Translate(context.Background(), "How do I get a refund?", "en", "de")
	if err != nil {
		t.Fatal(err)
	}
	testkit.MustEqual(t, out, "Wie erhalte ich eine Rückerstattung?")
	testkit.MustEqual(t, string(f.last.Model), "m")
	testkit.MustEqual(t, f.last.MaxTokens, int64(64))
}

func TestTranslate_SameLanguageSkipsModel(t *testing.T) {
	f := &fakeMessages{}
	tr := &Translator{messages: f, model: "m", maxTokens: 64}
	out, err := tr.Translate(context.Background(), "hi", "en", "en-US")
	if err != nil || out != "hi" || f.calls != 0 {
		t.Fatalf("out=%q err=%v calls=%d", out, err, f.calls)
	}
}

func TestTranslate_Failures(t *testing.T) {
	tr := &Translator{messages: &fakeMessages{err: errors.New("overloaded")}, model: "m", maxTokens: 8}
	if _, err := tr.Translate(context.Background(), "x", "en", "fr"); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v", err)
	}
	tr = &Translator{messages: &fakeMessages{}, model: "m", maxTokens: 8}
	if _, err := tr.Translate(context.Background(), "x", "en", "fr"); !perr.IsCode(err, perr.ErrorCodeUnknown) {
		t.Fatalf("err = %v", err)
	}
}
