package fieldmatch

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/fieldmatch/internal/version"
	"github.com/arthur-debert/fieldmatch/pkg/config"
	"github.com/arthur-debert/fieldmatch/pkg/logging"
	"github.com/arthur-debert/fieldmatch/pkg/matchers"
	"github.com/arthur-debert/fieldmatch/pkg/pattern"
	"github.com/arthur-debert/fieldmatch/pkg/style"
)

// app carries what every command needs once flags are parsed
type app struct {
	verbosity int
	appConfig string
	format    string
	color     string

	cfg      *config.Config
	registry *matchers.Registry
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "fieldmatch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.appConfig, "app-config", "", MsgFlagAppConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&a.color, "color", "", MsgFlagColor)

	rootCmd.AddCommand(newMatchersCmd(a))
	rootCmd.AddCommand(newMatchCmd(a))
	rootCmd.AddCommand(newHideCmd(a))
	rootCmd.AddCommand(newApplyCmd(a))
	rootCmd.AddCommand(newRulesCmd(a))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// init loads configuration, then sets up logging, pattern timeouts and colors
func (a *app) init(cmd *cobra.Command, args []string) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = a.format
	}
	if cmd.Flags().Changed("color") {
		overrides["output.color"] = a.color
	}

	cfg, err := config.Load(a.appConfig, overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg

	verbosity := a.verbosity
	if !cmd.Flags().Changed("verbose") {
		verbosity = cfg.Logging.Verbosity
	}
	logging.SetupLoggerWithOutput(verbosity, cmd.ErrOrStderr())

	logger := logging.GetLogger("cli")
	logger.Debug().Str("command", cmd.Name()).Msg("Command started")
	logging.LogCommand(cmd.CommandPath(), args)

	pattern.SetMatchTimeout(cfg.Pattern.MatchTimeout)
	style.Configure(cfg.Output.Color, os.Stdout)

	a.registry = matchers.NewRegistry()
	return nil
}
