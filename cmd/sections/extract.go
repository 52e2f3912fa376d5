package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/sections/internal/config"
	"github.com/tsawler/sections/kmeans"
	"github.com/tsawler/sections/model"
	"github.com/tsawler/sections/observability"
	"github.com/tsawler/sections/report"
	"github.com/tsawler/sections/sections"
)

func extractCmd() *cobra.Command {
	var format string
	var out string
	var scope string
	var clusters int
	var maxIterations int
	var contentTypes bool
	var letterRatio bool
	var dehyphenate bool
	var overlay string
	var overlayPage int
	var overlayScale float64
	var logLevel string

	cmd := &cobra.Command{
		Use:   "extract <input.json>",
		Short: "Extract classified sections from a JSON file of regions and columns (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("scope") {
				s, err := sections.ParseMergeScope(scope)
				if err != nil {
					return err
				}
				cfg.Sections.MergeScope = s
			}
			if flags.Changed("content-types") {
				cfg.Sections.ContentTypes = contentTypes
			}
			if flags.Changed("letter-ratio") {
				cfg.Sections.LetterRatioRule = letterRatio
			}
			if flags.Changed("dehyphenate") {
				cfg.Sections.Merge.Dehyphenate = dehyphenate
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := observability.NewStdLogger(cmd.ErrOrStderr(), observability.ParseLevel(cfg.LogLevel)).
				With(observability.String("input", args[0]))
			cfg.Sections.Logger = logger

			doc, err := readDocument(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			extractor := sections.NewExtractorWithConfig(cfg.Sections)
			records, err := extractor.Extract(doc.Regions, doc.Columns)
			if err != nil {
				logger.Error("extraction failed", observability.Error("error", err))
				return err
			}
			logger.Info("extracted sections", observability.Int("sections", len(records)))

			if clusters > 0 {
				flat, ref, err := sections.ClusterPassWithConfig(records, kmeans.Config{
					K:             clusters,
					MaxIterations: maxIterations,
				})
				if err != nil {
					logger.Error("cluster pass failed", observability.Error("error", err))
					return err
				}
				if ref != nil {
					logger.Info("reference cluster",
						observability.String("centre", ref.Centre.Label()),
						observability.Int("members", len(ref.Items)))
				}
				records = flat
			}

			if overlay != "" {
				if err := writeOverlay(overlay, overlayPage, overlayScale, doc, extractor); err != nil {
					return err
				}
				logger.Info("wrote overlay", observability.String("path", overlay), observability.Int("page", overlayPage))
			}

			title := filepath.Base(args[0])
			if out == "" {
				return writeRecords(cmd.OutOrStdout(), format, title, records)
			}
			return writeRecordsFile(out, format, title, records)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json|html")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&scope, "scope", "document", "where sections stop merging: document|page|column")
	cmd.Flags().IntVar(&clusters, "clusters", 0, "run a k-means cluster pass with this many clusters")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", kmeans.DefaultMaxIterations, "k-means iteration limit for --clusters")
	cmd.Flags().BoolVar(&contentTypes, "content-types", false, "assign body/header tiers by line height")
	cmd.Flags().BoolVar(&letterRatio, "letter-ratio", false, "require similar letter ratios when merging")
	cmd.Flags().BoolVar(&dehyphenate, "dehyphenate", false, "join words hyphenated across merged regions")
	cmd.Flags().StringVar(&overlay, "overlay", "", "write a PNG overlay of one page to this path")
	cmd.Flags().IntVar(&overlayPage, "page", 1, "page drawn by --overlay")
	cmd.Flags().Float64Var(&overlayScale, "scale", 1, "overlay pixels per point")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug|info|warn|error")

	return cmd
}

func writeRecords(w io.Writer, format, title string, records []*model.Record) error {
	switch strings.ToLower(format) {
	case "json":
		if records == nil {
			records = []*model.Record{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encoding records: %w", err)
		}
		return nil
	case "html":
		return report.WriteHTML(w, title, records)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeRecordsFile(path, format, title string, records []*model.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	return writeAndClose(f, format, title, records)
}

// writeAndClose writes records to wc and closes it, returning the close
// error when the write succeeded
func writeAndClose(wc io.WriteCloser, format, title string, records []*model.Record) error {
	if err := writeRecords(wc, format, title, records); err != nil {
		wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

func writeOverlay(path string, page int, scale float64, doc *document, extractor *sections.Extractor) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating overlay: %w", err)
	}

	secs := extractor.Sections(doc.Regions, doc.Columns)
	if err := report.WriteOverlayPNG(f, page, doc.Columns, secs, report.OverlayOptions{Scale: scale}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing overlay: %w", err)
	}
	return nil
}
