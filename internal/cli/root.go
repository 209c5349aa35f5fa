// Package cli wires the command line surface: generate, validate, classes
// and version commands on a cobra root.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "joy2mulka",
		Short:        "Convert JapanO-Entry entry lists to Mulka startlists",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to <output folder>/joy2mulka.log")

	cmd.AddCommand(generateCmd(&debug))
	cmd.AddCommand(validateCmd())
	cmd.AddCommand(classesCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
