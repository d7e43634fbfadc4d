// Package pipeline runs the full document-processing sequence:
// extraction, reconciliation, aggregation, report assembly.
package pipeline

import (
	"errors"
	"log/slog"

	"github.com/aliquigan/invoicegl/internal/document"
	"github.com/aliquigan/invoicegl/internal/extract"
	"github.com/aliquigan/invoicegl/internal/reconcile"
	"github.com/aliquigan/invoicegl/internal/reftable"
	"github.com/aliquigan/invoicegl/internal/report"
	"github.com/aliquigan/invoicegl/internal/summary"
)

// ErrNoItems means both extraction tiers came up empty. The run stops
// before aggregation rather than emitting a misleading financial summary.
var ErrNoItems = errors.New("no items extracted from document")

// Pipeline processes one document at a time. It holds no per-run state:
// the reference table is read-only, so a single Pipeline is safe to share
// across concurrent runs.
type Pipeline struct {
	extractor    *extract.Extractor
	reconciler   *reconcile.Reconciler
	templates    []extract.Template
	shippingCode string
	log          *slog.Logger
}

// Config carries the pipeline's inputs, passed explicitly rather than
// read from ambient state.
type Config struct {
	Refs         *reftable.Table
	Layout       extract.Layout
	Templates    []extract.Template
	ShippingCode string
	Log          *slog.Logger
}

func New(cfg Config) *Pipeline {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		extractor:    extract.New(cfg.Layout, cfg.Templates, log),
		reconciler:   reconcile.New(cfg.Refs, log),
		templates:    cfg.Templates,
		shippingCode: cfg.ShippingCode,
		log:          log,
	}
}

// Run processes a parsed document. Stages are strictly sequential: each
// stage's full output is the next stage's only input.
func (p *Pipeline) Run(doc *document.Document) (*report.Report, error) {
	log := p.log.With("source", doc.Title)

	if !p.knownVendor(doc) {
		log.Warn("document does not match a known vendor marker")
	}

	res := p.extractor.Extract(doc)
	if len(res.Items) == 0 {
		return nil, ErrNoItems
	}

	items := p.reconciler.Items(res.Items)
	sum := summary.Build(items, p.shippingCode, res.Totals.Shipping, res.Totals.Tax)

	log.Info("run complete",
		"items", len(items),
		"gl_buckets", len(sum.ByDescription),
		"calculated_total", sum.Total.StringFixed(2),
	)

	return &report.Report{
		Source:   doc.Title,
		Items:    items,
		Document: res.Totals,
		Summary:  sum,
		Stats:    res.Stats,
	}, nil
}

func (p *Pipeline) knownVendor(doc *document.Document) bool {
	if len(p.templates) == 0 {
		return true
	}
	text := doc.Text()
	for _, tpl := range p.templates {
		if tpl.MarkerPresent(text) {
			return true
		}
	}
	return false
}
