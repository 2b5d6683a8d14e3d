package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"wordfreq/internal/config"
	"wordfreq/internal/logging"
	"wordfreq/internal/wordcount"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configWarn error
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

// ensureConfig loads the configuration document once. A document that was
// discovered implicitly and fails to load falls back to defaults and is
// reported as a warning; a document named with --config must load cleanly.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var explicit string
		if c.configFlag != nil {
			explicit = strings.TrimSpace(*c.configFlag)
		}
		cfg, path, _, err := config.Load(explicit)
		c.configPath = path
		if err != nil {
			if explicit != "" {
				c.configErr = wordcount.Wrap(wordcount.ErrConfiguration, "load config", path, err)
				return
			}
			def := config.Default()
			cfg = &def
			c.configWarn = err
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger builds the run logger. Flags override the [logging] table.
func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	effective := *cfg
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		effective.Logging.Level = *c.logLevelFlag
	}
	if c.logFormatFlag != nil && strings.TrimSpace(*c.logFormatFlag) != "" {
		effective.Logging.Format = *c.logFormatFlag
	}
	logger, err := logging.NewFromConfig(&effective, w)
	if err != nil {
		return nil, wordcount.Wrap(wordcount.ErrInvalidArgument, "logging", "", err)
	}
	if c.configWarn != nil {
		logging.WarnWithContext(logger, "config ignored; using built-in defaults", "config_parse_failed",
			logging.String("path", c.configPath),
			logging.Error(c.configWarn),
			logging.String(logging.FieldImpact, "document defaults not applied"),
		)
	}
	return logger, nil
}
