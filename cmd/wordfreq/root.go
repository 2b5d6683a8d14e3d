package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"wordfreq/internal/config"
	"wordfreq/internal/logging"
	"wordfreq/internal/wordcount"
)

type countFlags struct {
	top            int
	minChar        int
	sort           string
	caseSensitive  bool
	noStopwords    bool
	ignoreWords    string
	ignoreFiles    []string
	alphabeticOnly bool
	outputFormat   string
	stopwordsFile  string
	jobs           int

	noColor  bool
	progress bool
}

// options converts the flags the user actually set into a partial record.
func (f *countFlags) options(fs *pflag.FlagSet) config.Options {
	var o config.Options
	if fs.Changed("top") {
		o.Top = &f.top
	}
	if fs.Changed("min-char") {
		o.MinChar = &f.minChar
	}
	if fs.Changed("sort") {
		o.Sort = &f.sort
	}
	if fs.Changed("case-sensitive") {
		o.CaseSensitive = &f.caseSensitive
	}
	if fs.Changed("no-stopwords") {
		o.NoStopwords = &f.noStopwords
	}
	if fs.Changed("ignore-words") {
		o.IgnoreWords = &f.ignoreWords
	}
	if fs.Changed("ignore-files") {
		o.IgnoreFiles = append([]string{}, f.ignoreFiles...)
	}
	if fs.Changed("alphabetic-only") {
		o.AlphabeticOnly = &f.alphabeticOnly
	}
	if fs.Changed("output-format") {
		o.OutputFormat = &f.outputFormat
	}
	if fs.Changed("stopwords-file") {
		path := strings.TrimSpace(f.stopwordsFile)
		if expanded, err := config.ExpandPath(path); err == nil {
			path = expanded
		}
		o.StopwordsFile = &path
	}
	if fs.Changed("jobs") {
		o.Jobs = &f.jobs
	}
	return o
}

func newRootCommand() *cobra.Command {
	var configFlag, logLevelFlag, logFormatFlag string
	flags := &countFlags{}

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:           "wordfreq [path...]",
		Short:         "Count frequency of words in files, directories, or standard input",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, ctx, flags, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFlag, "config", "C", "", "Configuration file path (a file named here must parse, unlike a discovered one)")
	pf.StringVar(&logLevelFlag, "log-level", "", "Diagnostic level: debug, info, warn, error")
	pf.StringVar(&logFormatFlag, "log-format", "", "Diagnostic format: console or json")

	f := rootCmd.Flags()
	f.IntVarP(&flags.top, "top", "t", 0, "Show the N most frequent words")
	f.IntVarP(&flags.minChar, "min-char", "m", 0, "Exclude words with less than N characters")
	f.StringVarP(&flags.sort, "sort", "s", "desc", "Sort order (asc or desc)")
	f.BoolVarP(&flags.caseSensitive, "case-sensitive", "c", false, "Enable case sensitivity when counting words")
	f.BoolVar(&flags.noStopwords, "no-stopwords", false, "Ignore stopwords when counting words")
	f.StringVarP(&flags.ignoreWords, "ignore-words", "i", "", "Ignore words matching the regular expression")
	f.StringSliceVarP(&flags.ignoreFiles, "ignore-files", "I", nil, "Ignore files with these names (comma separated)")
	f.BoolVar(&flags.alphabeticOnly, "alphabetic-only", false, "Ignore words containing non-alphabetic characters")
	f.StringVarP(&flags.outputFormat, "output-format", "o", "text", "Output format: text, json, csv, table")
	f.StringVar(&flags.stopwordsFile, "stopwords-file", "", "Stopword list to use instead of the built-in English list")
	f.IntVarP(&flags.jobs, "jobs", "j", 0, "Files counted in parallel (0 uses every CPU)")
	f.BoolVar(&flags.noColor, "no-color", false, "Disable coloured text output")
	f.BoolVar(&flags.progress, "progress", false, "Show a progress bar on a terminal while counting files")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runCount(cmd *cobra.Command, ctx *commandContext, flags *countFlags, args []string) error {
	runCtx := logging.WithRunID(cmd.Context())

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	merged := config.Merge(flags.options(cmd.Flags()), cfg.Defaults)
	if err := merged.Validate(); err != nil {
		return wordcount.Wrap(wordcount.ErrInvalidArgument, "options", "", err)
	}
	settings := merged.Resolve()

	opts := []wordcount.Option{wordcount.WithLogger(logger)}
	if flags.progress && isTerminal(cmd.ErrOrStderr()) {
		opts = append(opts, wordcount.WithProgress(newBarProgress(cmd.ErrOrStderr())))
	}
	pipeline, err := wordcount.New(settings, opts...)
	if err != nil {
		return err
	}

	input := wordcount.Input{Paths: args}
	if len(args) == 0 {
		stdin := cmd.InOrStdin()
		if isTerminal(stdin) {
			return wordcount.ErrNoInput
		}
		input.Stdin = stdin
	}

	logging.WithContext(runCtx, logger).Debug("run starting",
		logging.Int("targets", len(args)),
		logging.String("format", settings.OutputFormat),
		logging.String("sort", settings.Sort),
	)

	out := cmd.OutOrStdout()
	color := !flags.noColor && shouldColorize(out)
	return pipeline.Run(runCtx, input, out, color)
}
