package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/titpetric/sassgo/builtin"
	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/eval"
	"github.com/titpetric/sassgo/importer"
	"github.com/titpetric/sassgo/lexer"
	"github.com/titpetric/sassgo/parser"
	"github.com/titpetric/sassgo/token"
)

func newBuildCmd() *cobra.Command {
	var outPath string
	var compressed bool
	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Compile a Sass stylesheet to CSS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			toks, err := lexer.Lex(string(src))
			if err != nil {
				return err
			}
			ss, err := parser.Parse(toks, args[0])
			if err != nil {
				return err
			}

			loadPaths := append([]string{filepath.Dir(args[0])}, cfg.LoadPaths...)
			imp := importer.New(loadPaths...)
			logger := &stderrLogger{}
			out, err := eval.New(builtin.NewRegistry(), imp, logger).Run(ss)
			if err != nil {
				return err
			}

			text := css.Serialize(out, css.Options{Compressed: compressed || cfg.Compressed})

			var w io.Writer = os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			_, err = io.WriteString(w, text)
			return err
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write CSS to this file instead of stdout")
	cmd.Flags().BoolVar(&compressed, "compressed", false, "emit compressed CSS")
	return cmd
}

// stderrLogger backs @debug/@warn during CLI compilation.
type stderrLogger struct{}

func (stderrLogger) Debug(pos token.Position, msg string) {
	fmt.Fprintf(os.Stderr, "%d:%d DEBUG: %s\n", pos.Line, pos.Column, msg)
}

func (stderrLogger) Warn(pos token.Position, msg string) {
	fmt.Fprintf(os.Stderr, "%d:%d WARNING: %s\n", pos.Line, pos.Column, msg)
}
