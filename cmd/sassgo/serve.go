package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/titpetric/sassgo/httpserve"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve <dir>",
		Short: "Serve a directory of Sass stylesheets, compiling them on request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loadConfig()
			h := httpserve.New(args[0])
			fmt.Printf("sassgo: serving %s on %s\n", args[0], addr)
			return http.ListenAndServe(addr, h)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	return cmd
}
