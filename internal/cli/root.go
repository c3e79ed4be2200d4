// Package cli implements the recibo command line.
//
//	recibo
//	├── render   render a receipt file to PDF, XLSX or text
//	├── export   render and save under the configured output directory
//	├── total    print the per-line breakdown and the total
//	├── preview  print the composed receipt as JSON
//	├── words    spell an amount out in Portuguese
//	├── cpf      mask or validate a CPF
//	├── states   list the federative units
//	├── cities   list the cities of a unit
//	└── version
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guicheweb/recibo/internal/config"
	"github.com/guicheweb/recibo/internal/container"
	"github.com/guicheweb/recibo/pkg/utils"
)

// options holds the persistent flags
type options struct {
	configPath string
	verbose    bool
}

// app is built lazily so helper commands such as "words" never touch the
// configuration
type app struct {
	opts      *options
	logger    *zap.Logger
	container *container.Container
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:   "recibo",
		Short: "Gerador de recibos de diárias, despesas e adiantamentos",
		Long: `recibo composes Portuguese payment receipts for event staff and renders
them as PDF, XLSX or plain text.

Receipts are read from YAML or JSON files ("-" reads stdin):
  recibo total -i recibo.yaml
  recibo render -i recibo.yaml -f pdf -o recibo.pdf
  recibo export -i recibo.yaml -f xlsx
  recibo words 1.234,56`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to the configuration file (defaults and RECIBO_* variables when empty)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(
		newRenderCommand(a),
		newExportCommand(a),
		newTotalCommand(a),
		newPreviewCommand(a),
		newWordsCommand(),
		newCPFCommand(),
		newStatesCommand(a),
		newCitiesCommand(a),
		newVersionCommand(),
	)

	return root
}

// Execute runs the command line with the given context
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// start loads the configuration and starts the container once
func (a *app) start(ctx context.Context) (*container.Container, error) {
	if a.container != nil {
		return a.container, nil
	}

	logger, err := utils.NewCLILogger(a.opts.verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return nil, err
	}

	c, err := container.NewContainer(cfg.ToContainerConfig(), logger)
	if err != nil {
		return nil, err
	}
	if err := c.Start(ctx); err != nil {
		return nil, err
	}

	a.container = c
	return c, nil
}

func (a *app) close() error {
	if a.container == nil {
		return nil
	}
	err := a.container.Close()
	a.container = nil
	_ = a.logger.Sync()
	return err
}
