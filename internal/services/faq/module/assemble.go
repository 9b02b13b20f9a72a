package module

import (
	"context"
	"io"

	"faqbridge/internal/adapters/corpus"
	"faqbridge/internal/adapters/translate/provider"
	"faqbridge/internal/core/match"
	modkit "faqbridge/internal/modkit"
	perr "faqbridge/internal/platform/errors"
	"faqbridge/internal/platform/logger"
	"faqbridge/internal/services/faq/domain"
	faqrepo "faqbridge/internal/services/faq/repo"
)

// Wiring is everything New needs that can fail to build
type Wiring struct {
	Translator domain.Translator
	Entries    []match.Entry
	Recorder   domain.Recorder
}

// Assemble loads the corpus and builds the translator and recorder
// the closer releases the translator backend
func Assemble(ctx context.Context, deps modkit.Deps, o Options) (Wiring, io.Closer, error) {
	entries, err := LoadEntries(ctx, deps, o)
	if err != nil {
		return Wiring{}, nil, err
	}
	tr, closer, err := provider.New(ctx, o.Translate)
	if err != nil {
		return Wiring{}, nil, err
	}
	logger.Named("faq").Info().
		Str("source", o.CorpusSource).
		Int("entries", len(entries)).
		Str("translator", o.Translate.Provider).
		Bool("ask_events", deps.CH != nil).
		Msg("faq corpus loaded")

	return Wiring{
		Translator: tr,
		Entries:    entries,
		Recorder:   faqrepo.NewClickhouseRecorder(deps.CH),
	}, closer, nil
}

// LoadEntries reads the corpus named by o.CorpusSource
func LoadEntries(ctx context.Context, deps modkit.Deps, o Options) ([]match.Entry, error) {
	switch o.CorpusSource {
	case "", corpus.SourceEmbedded:
		return corpus.Embedded()
	case corpus.SourceJSON, corpus.SourceCSV:
		if o.CorpusPath == "" {
			return nil, perr.WithField(perr.InvalidArgf("FAQ_CORPUS_PATH is required for source %q", o.CorpusSource), "FAQ_CORPUS_PATH")
		}
		return corpus.LoadFile(o.CorpusPath, o.CorpusSource)
	case corpus.SourcePG:
		if deps.PG == nil {
			return nil, perr.Unavailablef("corpus source pg needs SERVICE_PGSQL_DBURL")
		}
		rows, err := faqrepo.NewCorpus(deps.PG, faqrepo.NewPG(), o.WriteTimeout).Load(ctx)
		if err != nil {
			return nil, err
		}
		return corpus.Clean(rows), nil
	default:
		return nil, perr.InvalidArgf("unknown corpus source %q", o.CorpusSource)
	}
}
