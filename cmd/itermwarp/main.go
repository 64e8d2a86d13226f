package main

import (
	"fmt"

	"github.com/jsvensson/itermwarp"
	"github.com/jsvensson/itermwarp/internal/prompt"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/go-kutil/util"
)

var (
	flagOut     string
	flagFormat  string
	flagVerbose int
	version     = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:          "itermwarp <file.itermcolors>",
	Short:        "Convert an iTerm2 color theme to a Warp theme",
	Version:      version,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
	RunE: runConvert,
}

func init() {
	rootCmd.Flags().StringVar(&flagOut, "out", ".", "output directory")
	rootCmd.Flags().StringVar(&flagFormat, "format", string(itermwarp.FormatYAML), "output format (yaml, pstheme)")
	rootCmd.Flags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (can be repeated)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	format, err := itermwarp.ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	c := &itermwarp.Converter{
		Prompter:  prompt.NewLine(cmd.InOrStdin(), cmd.OutOrStdout()),
		OutputDir: flagOut,
		Format:    format,
	}

	res, err := c.Convert(args[0])
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nTheme converted and saved as %s.\n", res.Path)
	return nil
}

// main exits through util.Exit so the buffered log writer is flushed.
func main() {
	if err := rootCmd.Execute(); err != nil {
		util.Exit(1)
	}
	util.Exit(0)
}
