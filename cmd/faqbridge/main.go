// Command faqbridge answers FAQ questions from the terminal and manages the stored corpus
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"faqbridge/internal/platform/logger"
)

// cli is the kong command tree
type cli struct {
	Source   string `help:"Corpus source (embedded, json, csv, pg); overrides FAQ_CORPUS_SOURCE."`
	Path     string `help:"Corpus file for json or csv sources; overrides FAQ_CORPUS_PATH." type:"path"`
	Provider string `help:"Translator (identity, libre, openai, anthropic, gemini); overrides FAQ_TRANSLATE_PROVIDER."`

	Ask     askCmd     `cmd:"" help:"Answer a question in any language."`
	Match   matchCmd   `cmd:"" help:"Look up an English query without translation."`
	Entries entriesCmd `cmd:"" help:"List the loaded corpus."`
	Import  importCmd  `cmd:"" help:"Replace the postgres corpus with entries from a JSON or CSV file."`
	Version versionCmd `cmd:"" help:"Print build information."`
}

// runtime is bound into every command's Run
type runtime struct {
	ctx context.Context
	out io.Writer
	cli *cli
}

func main() {
	logger.Init(logger.FromEnv())

	var c cli
	k := kong.Parse(&c,
		kong.Name("faqbridge"),
		kong.Description("Multilingual FAQ lookup through English pivot translation."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := k.Run(&runtime{ctx: ctx, out: os.Stdout, cli: &c})
	k.FatalIfErrorf(err)
}
