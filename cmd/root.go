// Package cmd provides the root command and CLI setup for codectx.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codectx.dev/pkg/codectx/internal/adapter"
	"codectx.dev/pkg/codectx/internal/controller"
	"codectx.dev/pkg/codectx/internal/domain"
	m "codectx.dev/pkg/codectx/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var changeWatcher adapter.ChangeWatcher
var workflow domain.Workflow
var ui controller.UI

// maxLinesFlag limits the number of pinned context lines.
var maxLinesFlag int

// verboseFlag switches logging to debug level.
var verboseFlag bool

// logFileFlag overrides the log file path.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	changeWatcher = adapter.NewLocalChangeWatcher(adapter.DefaultDebounce)
	workflow = domain.NewWorkflow(fsAdapter, changeWatcher, ui)
}

const rootLongDescription = `codectx pins the block openers enclosing the top of a scrolled view of
indentation-based source code (class, def, if, for, while, with, try, ...)
so you always know which function and branch you are reading.

The context is tracked incrementally: scrolling only rescans the lines
between the old and the new top line.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codectx",
		Short: "Show the code context of a position in a source file",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVarP(&maxLinesFlag, maxLinesFlagName, "n", viper.GetInt(maxLinesConfigKey), "maximum number of context lines to show")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(maxLinesFlagName), maxLinesConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
