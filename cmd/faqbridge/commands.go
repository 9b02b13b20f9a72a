package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"faqbridge/internal/adapters/corpus"
	"faqbridge/internal/adapters/translate/provider"
	"faqbridge/internal/core/version"
	"faqbridge/internal/modkit"
	"faqbridge/internal/modkit/module"
	"faqbridge/internal/platform/config"
	perr "faqbridge/internal/platform/errors"
	"faqbridge/internal/platform/logger"
	"faqbridge/internal/platform/store"
	"faqbridge/internal/services/faq/domain"
	faqmod "faqbridge/internal/services/faq/module"
	faqrepo "faqbridge/internal/services/faq/repo"
)

type askCmd struct {
	Query    []string      `arg:"" help:"Question text."`
	Language string        `short:"l" help:"BCP-47 tag of the question and answer." default:"en"`
	Timeout  time.Duration `help:"Overall deadline for both translation hops." default:"30s"`
}

type matchCmd struct {
	Query []string `arg:"" help:"English query."`
	JSON  bool     `help:"Print the full lookup result as JSON."`
}

type entriesCmd struct {
	JSON bool `help:"Print entries as a JSON array."`
}

type importCmd struct {
	File   string `arg:"" type:"existingfile" help:"JSON or CSV corpus file."`
	Format string `help:"File format (json, csv), guessed from the extension when empty."`
	DryRun bool   `help:"Parse and report without writing."`
}

type versionCmd struct{}

var (
	sources   = []string{corpus.SourceEmbedded, corpus.SourceJSON, corpus.SourceCSV, corpus.SourcePG}
	providers = []string{provider.Identity, provider.Libre, provider.OpenAI, provider.Anthropic, provider.Gemini}
)

// options merges flag overrides onto the environment
func (c *cli) options(root config.Conf) (faqmod.Options, error) {
	o := faqmod.FromConfig(root)
	if c.Source != "" {
		if !slices.Contains(sources, c.Source) {
			return o, perr.WithField(perr.InvalidArgf("unknown source %q, want one of %s", c.Source, strings.Join(sources, ", ")), "source")
		}
		o.CorpusSource = c.Source
	}
	if c.Path != "" {
		o.CorpusPath = c.Path
		if c.Source == "" && o.CorpusSource == corpus.SourceEmbedded {
			o.CorpusSource = ""
		}
	}
	if c.Provider != "" {
		if !slices.Contains(providers, c.Provider) {
			return o, perr.WithField(perr.InvalidArgf("unknown provider %q, want one of %s", c.Provider, strings.Join(providers, ", ")), "provider")
		}
		o.Translate.Provider = c.Provider
	}
	return o, nil
}

// session owns the store and the assembled pipeline for one command
type session struct {
	st     *store.Store
	svc    domain.ServicePort
	closer io.Closer
}

func (s *session) Close() {
	if s.closer != nil {
		_ = s.closer.Close()
	}
	if s.st != nil {
		_ = s.st.Close(context.Background())
	}
}

func open(ctx context.Context, c *cli) (*session, error) {
	root := config.New()
	o, err := c.options(root)
	if err != nil {
		return nil, err
	}
	if o.CorpusSource == "" {
		o.CorpusSource = guessSource(o.CorpusPath)
	}

	st, err := store.Open(ctx, store.ConfigFromEnv(root, "cli"), store.WithLogger(*logger.Get()))
	if err != nil {
		return nil, err
	}
	deps := modkit.Deps{Log: *logger.Get(), Cfg: root, PG: st.PG, CH: st.CH}

	w, closer, err := faqmod.Assemble(ctx, deps, o)
	if err != nil {
		_ = st.Close(ctx)
		return nil, err
	}
	return &session{st: st, svc: pipeline(deps, w), closer: closer}, nil
}

// pipeline builds the FAQ module the API mounts and takes the service from its ports
func pipeline(deps modkit.Deps, w faqmod.Wiring) domain.ServicePort {
	return module.MustPortsOf[domain.ServicePort](faqmod.New(deps, w))
}

func guessSource(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return corpus.SourceCSV
	}
	return corpus.SourceJSON
}

func (a *askCmd) Run(rt *runtime) error {
	ctx, cancel := context.WithTimeout(rt.ctx, a.Timeout)
	defer cancel()

	s, err := open(ctx, rt.cli)
	if err != nil {
		return err
	}
	defer s.Close()
	return a.run(ctx, s.svc, rt.out)
}

func (a *askCmd) run(ctx context.Context, svc domain.ServicePort, out io.Writer) error {
	lang, err := domain.CanonicalLanguage(a.Language)
	if err != nil {
		return err
	}
	resp, err := svc.Answer(ctx, domain.Request{Query: strings.Join(a.Query, " "), Language: lang})
	if err != nil {
		return describe(err)
	}
	_, err = fmt.Fprintln(out, resp.Answer)
	return err
}

func (m *matchCmd) Run(rt *runtime) error {
	s, err := open(rt.ctx, rt.cli)
	if err != nil {
		return err
	}
	defer s.Close()
	return m.run(s.svc, rt.out)
}

func (m *matchCmd) run(svc domain.ServicePort, out io.Writer) error {
	q := strings.Join(m.Query, " ")
	if strings.TrimSpace(q) == "" {
		return perr.WithField(perr.Validationf("query is required"), "query")
	}
	res := svc.Match(q)
	if m.JSON {
		return writeJSON(out, res)
	}
	if !res.Found {
		_, err := fmt.Fprintf(out, "no match (best score %d)\n", res.Score)
		return err
	}
	_, err := fmt.Fprintf(out, "[%d] score %d\nQ: %s\nA: %s\n", res.Index, res.Score, res.Question, res.Answer)
	return err
}

func (e *entriesCmd) Run(rt *runtime) error {
	s, err := open(rt.ctx, rt.cli)
	if err != nil {
		return err
	}
	defer s.Close()
	return e.run(s.svc, rt.out)
}

func (e *entriesCmd) run(svc domain.ServicePort, out io.Writer) error {
	list := svc.Entries()
	if e.JSON {
		return writeJSON(out, list.Entries)
	}
	for i, en := range list.Entries {
		if _, err := fmt.Fprintf(out, "%3d  %s\n     %s\n", i, en.Question, en.Answer); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "%d entries\n", list.Count)
	return err
}

func (i *importCmd) Run(rt *runtime) error {
	entries, err := corpus.LoadFile(i.File, i.Format)
	if err != nil {
		return err
	}
	if i.DryRun {
		_, err := fmt.Fprintf(rt.out, "%d entries parsed from %s\n", len(entries), i.File)
		return err
	}

	root := config.New()
	st, err := store.Open(rt.ctx, store.ConfigFromEnv(root, "cli"), store.WithLogger(*logger.Get()))
	if err != nil {
		return err
	}
	defer func() { _ = st.Close(context.Background()) }()
	if st.PG == nil {
		return perr.Unavailablef("import needs SERVICE_PGSQL_DBURL")
	}

	o, err := rt.cli.options(root)
	if err != nil {
		return err
	}
	removed, err := faqrepo.NewCorpus(st.PG, faqrepo.NewPG(), o.WriteTimeout).ReplaceAll(rt.ctx, entries)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(rt.out, "imported %d entries, replaced %d\n", len(entries), removed)
	return err
}

func (versionCmd) Run(rt *runtime) error {
	_, err := fmt.Fprintln(rt.out, version.Info("faqbridge").String())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// describe names the failing hop and its cause for terminal users
func describe(err error) error {
	var te *domain.TranslationError
	if errors.As(err, &te) && te.Err != nil {
		return fmt.Errorf("%s: %w", perr.WireFrom(err).Message, te.Err)
	}
	return err
}
