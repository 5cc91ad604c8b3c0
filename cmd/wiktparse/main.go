// Command wiktparse extracts ConceptNet-style edges from structured
// Wiktionary entries. It provides two subcommands: "extract" for batch/
// pipe use and "serve" for the HTTP extraction service, the same split the
// teacher repo drew between its interactive cmd/cli REPL and cmd/server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "wiktparse",
		Short:         "Extract a lexical-semantic edge graph from Wiktionary entries",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file (titledb, lang, addr)")

	root.AddCommand(newExtractCmd(&cfgFile))
	root.AddCommand(newServeCmd(&cfgFile))
	return root
}
