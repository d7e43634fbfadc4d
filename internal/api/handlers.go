package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliquigan/invoicegl/internal/parser"
	"github.com/aliquigan/invoicegl/internal/pipeline"
)

// handleProcess runs one uploaded invoice through the pipeline
// synchronously and returns the structured report.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	// Limit total request size, extra 1MB for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	p, err := parser.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	start := time.Now()
	doc, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		s.log.Error("parse failed", "file", filename, "error", err)
		jsonError(w, fmt.Sprintf("parse: %s", err), http.StatusUnprocessableEntity)
		return
	}

	rep, err := s.pipeline.Run(doc)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoItems) {
			jsonError(w, "no items extracted from invoice", http.StatusUnprocessableEntity)
			return
		}
		s.log.Error("pipeline failed", "file", filename, "error", err)
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.stats.Record(time.Since(start).Milliseconds())

	if wantsHTML(r) {
		html, err := rep.HTML()
		if err != nil {
			jsonError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, html)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep.ForJSON())
}

// handleStats returns a snapshot of recent processing latencies.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.stats.Snapshot())
}

func wantsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html")
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
