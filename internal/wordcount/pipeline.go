package wordcount

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"wordfreq/internal/collect"
	"wordfreq/internal/config"
	"wordfreq/internal/filter"
	"wordfreq/internal/freq"
	"wordfreq/internal/logging"
	"wordfreq/internal/render"
	"wordfreq/internal/source"
	"wordfreq/internal/stopwords"
	"wordfreq/internal/tokenize"
)

// Progress receives per-source completion events from CountFiles.
type Progress interface {
	Start(total int)
	Advance()
	Finish()
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLogger routes diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithProgress reports file completion to progress.
func WithProgress(progress Progress) Option {
	return func(p *Pipeline) {
		p.progress = progress
	}
}

// Pipeline holds the immutable per-run state shared by every worker.
type Pipeline struct {
	chain    *filter.Chain
	order    freq.Order
	format   render.Format
	limit    int
	jobs     int
	logger   *slog.Logger
	progress Progress
}

// Summary describes what a count consumed.
type Summary struct {
	Sources int
	Failed  int
	Bytes   int64
}

// New validates settings and builds the shared filter state. Invalid
// settings are reported as ErrInvalidArgument; an unreadable stopword file as
// ErrIO.
func New(settings config.Settings, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = logging.NewComponentLogger(p.logger, "wordcount")

	if err := settings.Validate(); err != nil {
		return nil, Wrap(ErrInvalidArgument, "validate settings", "", err)
	}
	order, err := freq.ParseOrder(settings.Sort)
	if err != nil {
		return nil, Wrap(ErrInvalidArgument, "sort", "", err)
	}
	format, err := render.ParseFormat(settings.OutputFormat)
	if err != nil {
		return nil, Wrap(ErrInvalidArgument, "output format", "", err)
	}

	cfg := filter.Config{
		CaseSensitive:  settings.CaseSensitive,
		AlphabeticOnly: settings.AlphabeticOnly,
		MinChars:       settings.MinChar,
	}
	if settings.IgnoreWords != "" {
		re, err := regexp.Compile(settings.IgnoreWords)
		if err != nil {
			return nil, Wrap(ErrInvalidArgument, "ignore words", "compile pattern", err)
		}
		cfg.IgnorePattern = re
	}
	if settings.NoStopwords {
		if settings.StopwordsFile != "" {
			set, err := stopwords.Load(settings.StopwordsFile)
			if err != nil {
				return nil, Wrap(ErrIO, "stopwords", "", err)
			}
			cfg.Stopwords = set
		} else {
			cfg.Stopwords = stopwords.English()
		}
	}
	if len(settings.IgnoreFiles) > 0 {
		cfg.IgnoreFilenames = make(map[string]struct{}, len(settings.IgnoreFiles))
		for _, name := range settings.IgnoreFiles {
			cfg.IgnoreFilenames[name] = struct{}{}
		}
	}

	p.chain = filter.New(cfg)
	p.order = order
	p.format = format
	p.limit = settings.Top
	p.jobs = settings.Jobs
	if p.jobs <= 0 {
		p.jobs = runtime.GOMAXPROCS(0)
	}
	return p, nil
}

// Files collects the files under paths, honouring the ignore-filename set.
func (p *Pipeline) Files(paths []string) []string {
	cfg := p.chain.Config()
	return collect.Files(paths, collect.Options{Ignore: cfg.IgnoresFile, Logger: p.logger})
}

// CountFiles counts every file in parallel and merges the results. Files that
// cannot be opened or read are logged and skipped; ErrNoValidSources is
// returned when none succeeded.
func (p *Pipeline) CountFiles(ctx context.Context, files []string) (freq.Map, Summary, error) {
	logger := logging.WithContext(ctx, p.logger)
	started := time.Now()

	results := make([]freq.Map, len(files))
	sizes := make([]int64, len(files))

	if p.progress != nil {
		p.progress.Start(len(files))
		defer p.progress.Finish()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			counts, size, err := p.countFile(path)
			if p.progress != nil {
				p.progress.Advance()
			}
			if err != nil {
				logging.WarnWithContext(logger, "source skipped", "source_failed",
					logging.String(logging.FieldSource, path),
					logging.Error(err),
					logging.String(logging.FieldImpact, "file excluded from totals"),
				)
				return nil
			}
			results[i] = counts
			sizes[i] = size
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	summary := Summary{Sources: len(files)}
	succeeded := make([]freq.Map, 0, len(results))
	for i, counts := range results {
		if counts == nil {
			summary.Failed++
			continue
		}
		summary.Bytes += sizes[i]
		succeeded = append(succeeded, counts)
	}
	if len(succeeded) == 0 {
		return nil, summary, ErrNoValidSources
	}

	merged := freq.Merge(succeeded...)
	logger.Info("counted files",
		logging.Int("sources", summary.Sources),
		logging.Int("failed", summary.Failed),
		logging.String("read", humanize.Bytes(uint64(summary.Bytes))),
		logging.Int("tokens", merged.Total()),
		logging.Int("distinct", len(merged)),
		logging.String("elapsed", time.Since(started).Round(time.Millisecond).String()),
	)
	return merged, summary, nil
}

func (p *Pipeline) countFile(path string) (freq.Map, int64, error) {
	rc, size, err := source.Open(path)
	if err != nil {
		return nil, 0, Wrap(ErrIO, "open", path, err)
	}
	defer rc.Close()

	counts, err := freq.Count(tokenize.Reader(rc), p.chain.Evaluator())
	if err != nil {
		return nil, 0, Wrap(ErrIO, "read", path, err)
	}
	return counts, size, nil
}

// CountReader counts a single stream sequentially.
func (p *Pipeline) CountReader(ctx context.Context, r io.Reader) (freq.Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	counts, err := freq.Count(tokenize.Reader(r), p.chain.Evaluator())
	if err != nil {
		return nil, Wrap(ErrIO, "read", "standard input", err)
	}
	logging.WithContext(ctx, p.logger).Info("counted stream",
		logging.Int("tokens", counts.Total()),
		logging.Int("distinct", len(counts)),
	)
	return counts, nil
}

// Rank orders counts according to the configured direction and limit.
func (p *Pipeline) Rank(counts freq.Map) []freq.Entry {
	return freq.Rank(counts, p.order, p.limit)
}

// Render writes entries in the configured format.
func (p *Pipeline) Render(w io.Writer, entries []freq.Entry, color bool) error {
	if err := render.Render(w, entries, p.format, render.Options{Color: color}); err != nil {
		return Wrap(ErrIO, "render", string(p.format), err)
	}
	return nil
}

// Input names what a run reads. Paths win over Stdin.
type Input struct {
	Paths []string
	Stdin io.Reader
}

// Run counts input and renders the ranked result to w.
func (p *Pipeline) Run(ctx context.Context, in Input, w io.Writer, color bool) error {
	var (
		counts freq.Map
		err    error
	)
	switch {
	case len(in.Paths) > 0:
		counts, _, err = p.CountFiles(ctx, p.Files(in.Paths))
	case in.Stdin != nil:
		counts, err = p.CountReader(ctx, in.Stdin)
	default:
		return ErrNoInput
	}
	if err != nil {
		return err
	}
	return p.Render(w, p.Rank(counts), color)
}
