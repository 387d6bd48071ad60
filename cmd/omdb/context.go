package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/slipstream/omdb/internal/config"
	"github.com/slipstream/omdb/internal/logger"
	"github.com/slipstream/omdb/omdb"
	"github.com/slipstream/omdb/omdb/mock"
)

// metadataClient is implemented by both the real and the mock OMDb clients.
type metadataClient interface {
	Name() string
	Search(ctx context.Context, query string, opts *omdb.SearchOptions) ([]omdb.SearchResultItem, error)
	GetByTitle(ctx context.Context, title string, opts *omdb.TitleOptions) (*omdb.MovieRecord, error)
	GetByID(ctx context.Context, ref any, opts *omdb.IDOptions) (*omdb.MovieRecord, error)
	GetPoster(ctx context.Context, ref any) (*omdb.Poster, error)
}

type globalFlags struct {
	config   string
	output   string
	logLevel string
	mock     bool
}

type commandContext struct {
	flags *globalFlags
	fs    afero.Fs

	once   sync.Once
	log    *logger.Logger
	client metadataClient
	err    error
}

func newCommandContext(flags *globalFlags, fs afero.Fs) *commandContext {
	return &commandContext{flags: flags, fs: fs}
}

func (c *commandContext) validateOutput() error {
	switch c.outputFormat() {
	case outputTable, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table, json or yaml)", c.flags.output)
}

func (c *commandContext) outputFormat() string {
	return strings.ToLower(strings.TrimSpace(c.flags.output))
}

// metadata loads configuration and builds the client on first use.
func (c *commandContext) metadata(cmd *cobra.Command) (metadataClient, error) {
	c.once.Do(func() {
		cfg, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.err = err
			return
		}

		level := cfg.Logging.Level
		if c.flags.logLevel != "" {
			level = c.flags.logLevel
		}
		c.log = logger.New(logger.Config{
			Level:      level,
			Format:     cfg.Logging.Format,
			Path:       cfg.Logging.Path,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
			Out:        cmd.ErrOrStderr(),
		})

		if c.flags.mock {
			c.client = mock.NewClient()
		} else {
			client, err := omdb.New(cfg.Client(), omdb.WithLogger(c.log.Logger))
			if err != nil {
				c.err = fmt.Errorf("%w (set OMDB_API_KEY or api_key in the config file)", err)
				return
			}
			c.client = client
		}

		c.log.WithComponent("cli").Debug().
			Str("provider", c.client.Name()).
			Str("baseUrl", cfg.BaseURL).
			Dur("timeout", cfg.Timeout).
			Msg("Client ready")
	})
	return c.client, c.err
}

func (c *commandContext) close() error {
	if c.log == nil {
		return nil
	}
	err := c.log.Close()
	c.log = nil
	return err
}
