package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/order-reports/pkg/format"
	"github.com/de-tools/order-reports/pkg/runtime/terminal/commands"
	"github.com/de-tools/order-reports/pkg/runtime/terminal/export"
	"github.com/de-tools/order-reports/pkg/services/config"
	exportsvc "github.com/de-tools/order-reports/pkg/services/export"
	"github.com/de-tools/order-reports/pkg/workbook/destination"
	"github.com/de-tools/order-reports/pkg/workbook/excel"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry exportsvc.Registry
	reporter *export.Reporter
	rootCmd  *cobra.Command
	errOut   io.Writer

	cfgPath   string
	outputDir string
	verbose   bool

	exporter *exportsvc.Exporter
	dest     destination.Destination
}

// Options contain configuration for the CLI
type Options struct {
	Registry exportsvc.Registry
	Output   io.Writer
	ErrOut   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}
	if opts.Registry == nil {
		opts.Registry = exportsvc.DefaultRegistry()
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: export.NewReporter(opts.Output),
		errOut:   opts.ErrOut,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrOut)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, used by tests
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) Exporter() *exportsvc.Exporter {
	return cli.exporter
}

func (cli *CLI) Destination() string {
	if cli.dest == nil {
		return ""
	}
	return cli.dest.String()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "reports",
		Short:             "Export storefront orders and sales reports to Excel",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVarP(&cli.cfgPath, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVarP(&cli.outputDir, "output-dir", "o", "", "Directory to write reports to")
	cmd.PersistentFlags().BoolVarP(&cli.verbose, "verbose", "v", false, "Enable debug logging")

	for _, kind := range cli.registry.ListKinds() {
		cmd.AddCommand(commands.NewExportCmd(kind, cli, cli.reporter))
	}
	cmd.AddCommand(commands.NewKindsCmd(cli.registry))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	level := zerolog.InfoLevel
	if cli.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.errOut}).
		Level(level).
		With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	settings, err := config.Load(cli.cfgPath)
	if err != nil {
		return err
	}
	if cli.outputDir != "" {
		settings.Output.Dir = cli.outputDir
	}

	locale, err := settings.Locale.Locale()
	if err != nil {
		return err
	}

	dest, err := config.NewDestination(ctx, settings.Output)
	if err != nil {
		return fmt.Errorf("failed to configure output: %w", err)
	}

	cli.dest = dest
	cli.exporter = exportsvc.NewExporter(format.New(locale), excel.NewWriter(dest))

	logger.Debug().
		Str("locale", locale.String()).
		Str("destination", dest.String()).
		Msg("configuration loaded")
	return nil
}
