package api

import (
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// contentTypes maps asset extensions to content types for the public
// directory. Anything else is served as a generic byte stream.
var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".json": "application/json",
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".ico":  "image/x-icon",
	".txt":  "text/plain; charset=utf-8",
}

// handleStaticOrNotFound serves files from the public directory for GET
// requests the API did not claim, and answers the JSON not-found envelope
// for everything else. Path traversal outside the public directory is
// rejected outright.
func handleStaticOrNotFound(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || deps.PublicDir == "" {
			writeNotFound(w)
			return
		}

		rel, ok := assetPath(r.URL.Path)
		if !ok {
			writeNotFound(w)
			return
		}

		full := filepath.Join(deps.PublicDir, filepath.FromSlash(rel))
		f, err := os.Open(full)
		if err != nil {
			writeNotFound(w)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			writeNotFound(w)
			return
		}

		contentType, ok := contentTypes[strings.ToLower(filepath.Ext(full))]
		if !ok {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		io.Copy(w, f)
	}
}

// assetPath normalizes a URL path to a relative file path under the public
// directory. Returns ok=false for traversal attempts.
func assetPath(urlPath string) (string, bool) {
	if strings.Contains(urlPath, "..") {
		return "", false
	}
	clean := path.Clean("/" + urlPath)
	rel := strings.TrimPrefix(clean, "/")
	if rel == "" {
		rel = "index.html"
	}
	return rel, true
}

func writeNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"status":"not_found"}`))
}
