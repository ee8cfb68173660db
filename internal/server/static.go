package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// mimeTypes covers the asset types the web client ships with.
var mimeTypes = map[string]string{
	"html": "text/html",
	"js":   "text/javascript",
	"css":  "text/css",
	"json": "application/json",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"svg":  "image/svg+xml",
	"ico":  "image/x-icon",
}

func mimeTypeByExt(ext string) string {
	if mime, ok := mimeTypes[strings.ToLower(ext)]; ok {
		return mime
	}
	return "application/octet-stream"
}

// resolveStaticPath maps a URL path to a file under the client directory.
// Prebuilt assets in client/build win when present; otherwise the raw
// client directory is tried, and everything else falls back to the main
// HTML document so the client can be exercised without a build step.
func resolveStaticPath(clientDir, urlPath string) string {
	requested := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if requested == "" {
		requested = "index.html"
	}
	requested = filepath.FromSlash(requested)

	buildDir := filepath.Join(clientDir, "build")
	if dirExists(buildDir) {
		if candidate := filepath.Join(buildDir, requested); fileExists(candidate) {
			return candidate
		}
	}
	if candidate := filepath.Join(clientDir, requested); fileExists(candidate) {
		return candidate
	}
	return filepath.Join(clientDir, "index.html")
}

func (s *Server) serveStatic(w http.ResponseWriter, r *http.Request) {
	filePath := resolveStaticPath(s.opts.ClientDir, r.URL.Path)

	content, err := os.ReadFile(filePath)
	if err != nil {
		s.log().Error("read static file", "path", filePath, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ext := strings.TrimPrefix(filepath.Ext(filePath), ".")
	w.Header().Set("Content-Type", mimeTypeByExt(ext))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
