package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/order-calc/pkg/runtime/terminal/commands"
	"github.com/de-tools/order-calc/pkg/runtime/terminal/export"
	"github.com/de-tools/order-calc/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	cfgPath string
	env     *commands.Env
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Input     io.Reader
	Output    io.Writer
	ErrOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	cli := &CLI{env: &commands.Env{}}
	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetIn(opts.Input)
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrOutput)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args[1:], mostly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "order-calc",
		Short:             "Order price calculator",
		Long:              "Prices an order from quantity, unit price and tax percentage.\nRun without a subcommand to enter the values interactively.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.loadEnv,
		RunE:              cli.runInteractive,
	}

	cmd.PersistentFlags().StringVarP(&cli.cfgPath, "config", "c", "", "Path to a settings file (yaml, json or toml)")

	cmd.AddCommand(commands.NewCalculateCmd(cli.env))
	cmd.AddCommand(commands.NewProfilesCmd(cli.env))

	return cmd
}

func (cli *CLI) loadEnv(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(cli.cfgPath)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := zerolog.New(cmd.ErrOrStderr()).Level(level).With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	cli.env.Settings = settings

	logger.Debug().
		Str("config", cli.cfgPath).
		Str("profiles_path", settings.ProfilesPath).
		Msg("settings loaded")
	return nil
}

func (cli *CLI) runInteractive(cmd *cobra.Command, _ []string) error {
	currency := cli.env.Settings.CurrencySymbol

	summary, err := NewInputCollector(cmd.InOrStdin(), cmd.OutOrStdout(), currency).Collect()
	if err != nil {
		return err
	}

	zerolog.Ctx(cmd.Context()).Debug().
		Float64("final_price", summary.FinalPrice).
		Msg("order priced")

	return export.NewReporter(cmd.OutOrStdout(), currency).Handle(summary)
}
