package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codectx.dev/pkg/codectx/internal/domain"
	m "codectx.dev/pkg/codectx/internal/model"
)

var viewLineFlag int
var viewWatchFlag bool
var viewStyleFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Page through a file with its code context pinned on top",
		Long: `Open FILE in a pager that keeps the enclosing block openers of the first
visible line pinned above the text. Without a terminal the context and the
text from --line onwards are printed once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{
				Path:       m.Path(args[0]),
				Line:       viewLineFlag,
				MaxDepth:   viper.GetInt(maxLinesConfigKey),
				Openers:    configuredOpeners(),
				Watch:      viper.GetBool(watchConfigKey),
				Highlight:  viper.GetBool(highlightConfigKey),
				Style:      viper.GetString(styleConfigKey),
				Background: viper.GetString(bgColorConfigKey),
				Foreground: viper.GetString(fgColorConfigKey),
			})
		},
	}

	configureViewFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func configureViewFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&viewLineFlag, lineFlagName, "l", 1, "first visible line")
	cmd.Flags().BoolVarP(&viewWatchFlag, watchFlagName, "w", viper.GetBool(watchConfigKey), "reload the file when it changes on disk")
	bindFlagToConfig(cmd.Flags().Lookup(watchFlagName), watchConfigKey)
	cmd.Flags().StringVar(&viewStyleFlag, "style", viper.GetString(styleConfigKey), "chroma style used for syntax highlighting")
	bindFlagToConfig(cmd.Flags().Lookup("style"), styleConfigKey)
}
