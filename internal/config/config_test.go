package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliquigan/invoicegl/internal/extract"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "INVOICEGL_API_KEY", "REFTABLE_PATH", "TEMPLATES_PATH",
		"SHIPPING_CODE", "MAX_UPLOAD_BYTES", "PDF_FALLBACK_PDFTOTEXT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8090", cfg.Port)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "gl_codes.xlsx", cfg.RefTablePath)
	assert.Equal(t, extract.StarbucksShippingCode, cfg.ShippingCode)
	assert.Equal(t, int64(52428800), cfg.MaxUploadBytes)
	assert.True(t, cfg.PDFFallbackPdftotext)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("INVOICEGL_API_KEY", "secret")
	t.Setenv("REFTABLE_PATH", "/etc/gl/codes.csv")
	t.Setenv("SHIPPING_CODE", "000000042")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("PDF_FALLBACK_PDFTOTEXT", "false")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "/etc/gl/codes.csv", cfg.RefTablePath)
	assert.Equal(t, "000000042", cfg.ShippingCode)
	assert.Equal(t, int64(1048576), cfg.MaxUploadBytes)
	assert.False(t, cfg.PDFFallbackPdftotext)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")
	t.Setenv("PDF_FALLBACK_PDFTOTEXT", "maybe")

	cfg := Load()

	assert.Equal(t, int64(52428800), cfg.MaxUploadBytes)
	assert.True(t, cfg.PDFFallbackPdftotext)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Config{}.Validate())
	assert.NoError(t, Config{RefTablePath: "gl.xlsx"}.Validate())
}
