package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "v0.1.0"

var configFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "catalogd",
		Short: "Catalogd serves an in-memory product catalog session",
		Long: `Catalogd holds a product catalog in memory and exposes search,
pagination, statistics, the product editor and delete confirmation over HTTP
for a presentation layer to render.`,
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML); CATALOG_* environment variables override it")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE:  runServe,
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "catalogd "+version)
		},
	})
	return root
}
