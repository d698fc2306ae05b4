package terminal

import (
	"io"
	"os"
	"strings"

	"github.com/de-tools/data-reports/pkg/runtime/terminal/commands"
	"github.com/de-tools/data-reports/pkg/runtime/terminal/export"
	"github.com/de-tools/data-reports/pkg/services/config"
	"github.com/de-tools/data-reports/pkg/services/report"
	"github.com/de-tools/data-reports/pkg/sink"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	env        *commands.Env
	logOutput  io.Writer
	configPath string
	logLevel   string
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry    report.Registry
	Output      io.Writer
	LogOutput   io.Writer
	NewS3Client sink.ClientFactory
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.NewS3Client == nil {
		opts.NewS3Client = sink.NewS3Client
	}

	cli := &CLI{
		env: &commands.Env{
			Registry: opts.Registry,
			Reporter: export.NewReporter(opts.Output),
			Sinks:    &sink.Parser{NewS3Client: opts.NewS3Client, Stdout: opts.Output},
		},
		logOutput: opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides the process arguments, for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "reports",
		Short:             "Reservation and electricity report tool",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides log_level")

	cmd.AddCommand(commands.NewListCmd(cli.env))
	cmd.AddCommand(commands.NewRunCmd(cli.env))
	cmd.AddCommand(commands.NewIngestCmd(cli.env))

	return cmd
}

// setup loads the configuration and attaches a run-scoped logger to the command context.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(cli.configPath)
	if err != nil {
		return err
	}
	if cli.logLevel != "" {
		cfg.LogLevel = cli.logLevel
	}
	cli.env.Config = cfg

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return err
	}

	cli.env.RunID = uuid.NewString()
	logger := zerolog.New(cli.logOutput).
		Level(level).
		With().
		Timestamp().
		Str("run_id", cli.env.RunID).
		Str("command", cmd.Name()).
		Logger()

	cmd.SetContext(logger.WithContext(cmd.Context()))
	logger.Debug().Str("config", cli.configPath).Msg("configuration loaded")
	return nil
}
