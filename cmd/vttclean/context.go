package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"vttclean/internal/config"
	"vttclean/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext() *commandContext {
	return &commandContext{
		configFlag:    new(string),
		logLevelFlag:  new(string),
		logFormatFlag: new(string),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := strings.TrimSpace(*c.configFlag)
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = fmt.Errorf("load configuration: %w", err)
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// configValue returns the loaded configuration, or defaults when loading
// was skipped or failed.
func (c *commandContext) configValue() *config.Config {
	if cfg, err := c.ensureConfig(); err == nil && cfg != nil {
		return cfg
	}
	cfg := config.Default()
	return &cfg
}

func (c *commandContext) resolvedLogLevel(cfg *config.Config) string {
	if level := strings.TrimSpace(*c.logLevelFlag); level != "" {
		return level
	}
	return cfg.Logging.Level
}

func (c *commandContext) resolvedLogFormat(cfg *config.Config) string {
	if format := strings.TrimSpace(*c.logFormatFlag); format != "" {
		return format
	}
	return cfg.Logging.Format
}

// logger builds the run logger tagged with the command's correlation id.
func (c *commandContext) logger(cmd *cobra.Command, component string) (*slog.Logger, error) {
	cfg := *c.configValue()
	cfg.Logging.Level = c.resolvedLogLevel(&cfg)
	cfg.Logging.Format = c.resolvedLogFormat(&cfg)
	base, err := logging.NewFromConfig(&cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logging.NewComponentLogger(logging.WithContext(cmd.Context(), base), component), nil
}

// colorize reports whether output written to w should carry ANSI colors.
func (c *commandContext) colorize(w io.Writer) bool {
	switch c.configValue().Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return shouldColorize(w)
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
