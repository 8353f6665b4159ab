package main

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
)

// exportSite writes the rendered landing page and the embedded static
// assets under outDir for static hosting. The HTMX fragments and the relay
// still need a running server.
func exportSite(outDir string, site *Site) error {
	r, err := newRouter(site, NewContactRelay(Config{}, nil))
	if err != nil {
		return err
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		return fmt.Errorf("render index: status %d", w.Code)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.html"), w.Body.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing index.html: %w", err)
	}

	return fs.WalkDir(staticFS, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(outDir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := staticFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		return nil
	})
}
