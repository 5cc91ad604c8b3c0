package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/conceptgraph/wiktsem/internal/config"
	"github.com/conceptgraph/wiktsem/internal/server"
	"github.com/conceptgraph/wiktsem/internal/titleindex"
	"github.com/conceptgraph/wiktsem/internal/walker"
)

func newServeCmd(cfgFile *string) *cobra.Command {
	var (
		addr    string
		titleDB string
		lang    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP extraction service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cfg.TitleDB == "" {
				cfg.TitleDB = titleDB
			}
			if lang != "" {
				cfg.Lang = lang
			}
			if cfg.Addr == "" {
				cfg.Addr = addr
			}

			var oracle titleindex.Oracle = titleindex.NewMapOracle()
			if cfg.TitleDB != "" {
				sq, err := titleindex.OpenSQLite(cfg.TitleDB)
				if err != nil {
					return fmt.Errorf("opening titledb: %w", err)
				}
				defer sq.Close()
				oracle = sq
			}

			logger := slog.Default()
			w := walker.New(oracle, cfg.Lang, logger)
			router := server.NewRouter(w, logger)

			logger.Info("wiktparse server listening", "addr", cfg.Addr)
			return http.ListenAndServe(cfg.Addr, router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().StringVar(&titleDB, "titledb", "", "path to the SQLite title index (empty: no definition-gloss disambiguation)")
	cmd.Flags().StringVar(&lang, "lang", "", "Wiktionary edition language code (default: en, or config/env)")

	return cmd
}
