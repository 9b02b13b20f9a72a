package module

import (
	"time"

	"faqbridge/internal/adapters/corpus"
	"faqbridge/internal/adapters/translate/provider"
	"faqbridge/internal/platform/config"
)

// Options controls where the corpus comes from and which translator answers
type Options struct {
	CorpusSource string
	CorpusPath   string
	WriteTimeout time.Duration // statement timeout for corpus writes

	Translate provider.Options
}

// FromConfig reads FAQ_* and TRANSLATE_*
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("FAQ_")
	return Options{
		CorpusSource: c.MayEnum("CORPUS_SOURCE", corpus.SourceEmbedded,
			corpus.SourceEmbedded, corpus.SourceJSON, corpus.SourceCSV, corpus.SourcePG),
		CorpusPath:   c.MayString("CORPUS_PATH", ""),
		WriteTimeout: c.MayDuration("WRITE_TIMEOUT", 30*time.Second),
		Translate:    provider.FromConfig(cfg),
	}
}
