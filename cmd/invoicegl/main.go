package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aliquigan/invoicegl/internal/config"
	"github.com/aliquigan/invoicegl/internal/extract"
	"github.com/aliquigan/invoicegl/internal/pipeline"
	"github.com/aliquigan/invoicegl/internal/reftable"
)

const version = "1.1.0"

var rootCmd = &cobra.Command{
	Use:   "invoicegl",
	Short: "Extract invoice line items and reconcile them against GL codes",
	Long: `invoicegl parses a vendor invoice (pdf, txt, csv, html or docx),
extracts its line items, matches them against a GL reference table and
prints a categorized financial summary with reconciled totals.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the invoicegl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("invoicegl " + version)
	},
}

func init() {
	rootCmd.AddCommand(processCmd, serveCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger writes structured logs to stderr so the report itself owns
// stdout.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

// buildPipeline loads the reference table and fingerprint templates and
// wires the processing pipeline.
func buildPipeline(cfg config.Config, log *slog.Logger) (*pipeline.Pipeline, error) {
	refs, err := reftable.Load(cfg.RefTablePath)
	if err != nil {
		return nil, fmt.Errorf("load reference table: %w", err)
	}
	log.Info("reference table loaded", "path", cfg.RefTablePath, "entries", refs.Len())

	templates := []extract.Template{extract.StarbucksTemplate()}
	if cfg.TemplatesPath != "" {
		extra, err := extract.LoadTemplates(cfg.TemplatesPath)
		if err != nil {
			return nil, fmt.Errorf("load templates: %w", err)
		}
		templates = append(templates, extra...)
		log.Info("fingerprint templates loaded", "path", cfg.TemplatesPath, "count", len(extra))
	}

	return pipeline.New(pipeline.Config{
		Refs:         refs,
		Layout:       extract.DefaultLayout(),
		Templates:    templates,
		ShippingCode: cfg.ShippingCode,
		Log:          log,
	}), nil
}
