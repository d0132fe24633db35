// Command sassgo compiles Sass stylesheets to CSS. Adapted from lessgo's
// cmd/lessgo/main.go compile/fmt dispatch, rebuilt on cobra per
// SPEC_FULL.md §6.7 (the example pack's shared CLI convention, rather
// than lessgo's bare flag/switch dispatch).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/titpetric/sassgo/config"
	"github.com/titpetric/sassgo/debug"
)

var (
	cfgPath string
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:     "sassgo",
		Short:   "Compile Sass stylesheets to CSS",
		Version: "0.1.0",
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", ".sassgo.yaml", "path to project config")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug tracing")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	debug.Enabled = verbose
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sassgo: %s\n", err)
		return config.Default()
	}
	return cfg
}
