package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/titpetric/sassgo/lexer"
	"github.com/titpetric/sassgo/parser"
	"github.com/titpetric/sassgo/sassfmt"
)

func newFmtCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt <files...>",
		Short: "Round-trip format Sass source without evaluating it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				src, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				toks, err := lexer.Lex(string(src))
				if err != nil {
					return err
				}
				ss, err := parser.Parse(toks, path)
				if err != nil {
					return err
				}
				out := sassfmt.Format(ss)
				if write {
					if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
						return err
					}
					continue
				}
				fmt.Print(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite files in place instead of printing to stdout")
	return cmd
}
