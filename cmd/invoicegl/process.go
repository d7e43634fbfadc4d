package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aliquigan/invoicegl/internal/config"
	"github.com/aliquigan/invoicegl/internal/parser"
	"github.com/aliquigan/invoicegl/internal/pipeline"
)

var (
	processRefs      string
	processTemplates string
)

var processCmd = &cobra.Command{
	Use:   "process <invoice-file>",
	Short: "Process a single invoice and print the report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(args[0])
	},
}

func init() {
	processCmd.Flags().StringVar(&processRefs, "refs", "", "Path to the GL reference table (xlsx or csv)")
	processCmd.Flags().StringVar(&processTemplates, "templates", "", "Path to a YAML file with extra fingerprint templates")
}

func runProcess(path string) error {
	log := newLogger()

	cfg := config.Load()
	if processRefs != "" {
		cfg.RefTablePath = processRefs
	}
	if processTemplates != "" {
		cfg.TemplatesPath = processTemplates
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}

	fileParser, err := parser.ForFile(path)
	if err != nil {
		return err
	}
	if pp, ok := fileParser.(*parser.PDFParser); ok {
		pp.FallbackPdftotext = cfg.PDFFallbackPdftotext
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open invoice: %w", err)
	}
	defer f.Close()

	doc, err := fileParser.Parse(f, path)
	if err != nil {
		return fmt.Errorf("extract document: %w", err)
	}
	log.Info("document parsed", "lines", len(doc.Lines), "tables", len(doc.Tables))

	rep, err := p.Run(doc)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoItems) {
			return fmt.Errorf("no items were extracted from the invoice")
		}
		return err
	}

	fmt.Print(rep.Render())
	fmt.Println("\n=== DONE ===")
	return nil
}
