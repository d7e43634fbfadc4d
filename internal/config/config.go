package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aliquigan/invoicegl/internal/extract"
)

type Config struct {
	Port string

	// Auth for the HTTP surface; empty disables auth.
	APIKey string

	// Reference table (xlsx or csv).
	RefTablePath string

	// Optional YAML file with additional fingerprint templates.
	TemplatesPath string

	// Shipping/handling item code excluded from GL buckets.
	ShippingCode string

	// Upload limits
	MaxUploadBytes int64

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("INVOICEGL_API_KEY"),

		RefTablePath:  envOr("REFTABLE_PATH", "gl_codes.xlsx"),
		TemplatesPath: os.Getenv("TEMPLATES_PATH"),
		ShippingCode:  envOr("SHIPPING_CODE", extract.StarbucksShippingCode),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}

	return cfg
}

func (c Config) Validate() error {
	if c.RefTablePath == "" {
		return fmt.Errorf("REFTABLE_PATH is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
