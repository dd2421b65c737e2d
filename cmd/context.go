package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codectx.dev/pkg/codectx/internal/controller"
	"codectx.dev/pkg/codectx/internal/domain"
)

var contextLinesFlag []int
var contextFormatFlag string
var contextParallelFlag int

// contextCmd represents the context command.
var contextCmd = newContextCmd()

func newContextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context FILE...",
		Short: "Print the code context of lines in one or more files",
		Long: `Print the block openers enclosing each --line of every FILE.

Lines are applied in the given order, as if the view was scrolled from one
to the next, e.g.:
  codectx context app.py --line 120 --line 80 --format yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			threads := max(viper.GetInt(parallelConfigKey), 1)

			return workflow.Context(cmd.Context(), domain.ContextArgs{
				Paths:    parsePaths(args),
				Lines:    contextLinesFlag,
				MaxDepth: viper.GetInt(maxLinesConfigKey),
				Openers:  configuredOpeners(),
				Threads:  uint(threads),
				Format:   format,
			})
		},
	}

	configureContextFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(contextCmd)
}

func configureContextFlags(cmd *cobra.Command) {
	cmd.Flags().IntSliceVarP(&contextLinesFlag, lineFlagName, "l", nil, "line to report (can be repeated)")
	cobra.CheckErr(cmd.MarkFlagRequired(lineFlagName))

	cmd.Flags().StringVarP(&contextFormatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "output format (text or yaml)")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().IntVarP(&contextParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of files processed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}
