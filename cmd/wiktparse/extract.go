package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/conceptgraph/wiktsem/internal/config"
	"github.com/conceptgraph/wiktsem/internal/titleindex"
	"github.com/conceptgraph/wiktsem/internal/walker"
)

func newExtractCmd(cfgFile *string) *cobra.Command {
	var (
		inputPath string
		titleDB   string
		lang      string
		trace     bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Walk one structured entry (or a JSONL stream of them) and print emitted edges as JSONL",
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
			if trace {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
			w := walker.New(oracle, cfg.Lang, logger)

			in := os.Stdin
			if inputPath != "" {
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("opening input: %w", err)
				}
				defer f.Close()
				in = f
			}

			return runExtract(w, in, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a JSON (or JSONL) file of structured entries; defaults to stdin")
	cmd.Flags().StringVar(&titleDB, "titledb", "", "path to the SQLite title index (empty: no definition-gloss disambiguation)")
	cmd.Flags().StringVar(&lang, "lang", "", "Wiktionary edition language code (default: en, or config/env)")
	cmd.Flags().BoolVar(&trace, "trace", false, "log to stderr at debug level (section failures are logged at error level either way)")

	return cmd
}

// runExtract decodes one or more StructuredEntry JSON values from r — a
// single object, or one object after another (JSONL or bare concatenation)
// — and writes each emitted edge as a JSON line to out.
func runExtract(w *walker.Walker, r io.Reader, out io.Writer) error {
	dec := json.NewDecoder(r)
	enc := json.NewEncoder(out)

	for {
		var entry walker.StructuredEntry
		if err := dec.Decode(&entry); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decoding entry: %w", err)
		}
		edges, err := w.WalkEntry(entry)
		if err != nil {
			return fmt.Errorf("walking entry %q: %w", entry.Title, err)
		}
		for _, e := range edges {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
	}
}
