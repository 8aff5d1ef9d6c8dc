/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/suparena/structregistry"
	"github.com/suparena/structregistry/config"
	"github.com/suparena/structregistry/event"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds state shared by the subcommands of one invocation.
type cli struct {
	configPath string
	verbose    bool

	logger *zap.Logger
	reg    *structregistry.Registry
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "registryctl",
		Short:         "Create and look up records in a struct registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `registryctl stores Inner and Outer records keyed by id and reads them back.

Records are passed as JSON text. The backend is selected through --config, a .env
file or REGISTRY_* environment variables; use the sqlite backend to keep state
between invocations.`,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		c.createInnerCmd(),
		c.createOuterCmd(),
		c.getInnerCmd(),
		c.getOuterCmd(),
		c.eventsCmd(),
		shapeCmd(),
		versionCmd(),
	)
	return root
}

// run wraps a command body that needs the registry: it loads configuration, opens
// the registry and closes it when the body returns.
func (c *cli) run(body func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if err := c.open(cmd); err != nil {
			return err
		}
		defer func() {
			if closeErr := c.close(); err == nil {
				err = closeErr
			}
		}()
		return body(cmd, args)
	}
}

func (c *cli) open(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	c.logger, err = newLogger(cfg.LogLevel, c.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	c.reg, err = structregistry.Open(cmd.Context(), cfg,
		structregistry.WithLogger(c.logger),
		structregistry.WithEmitter(event.NewLogEmitter(c.logger)),
	)
	return err
}

func (c *cli) close() error {
	var err error
	if c.reg != nil {
		err = c.reg.Close()
		c.reg = nil
	}
	if c.logger != nil {
		_ = c.logger.Sync()
	}
	return err
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg.Level = lvl
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}
