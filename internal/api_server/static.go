package apiserver

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

const indexFile = "index.html"

// StaticHandler serves the built site from dir. Paths that do not name a file fall back
// to index.html so client-side routes resolve.
func StaticHandler(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if dir == "" {
			http.Error(w, "Static folder not configured", http.StatusNotFound)
			return
		}

		name := path.Clean("/" + r.URL.Path)
		if name != "/" && name != "/"+indexFile {
			if file := filepath.Join(dir, filepath.FromSlash(name)); isFile(file) {
				http.ServeFile(w, r, file)
				return
			}
		}

		serveIndex(w, r, filepath.Join(dir, indexFile))
	})
}

// serveIndex writes the index page without the redirect http.ServeFile applies to /index.html.
func serveIndex(w http.ResponseWriter, r *http.Request, index string) {
	f, err := os.Open(index)
	if err != nil {
		http.Error(w, "index.html not found", http.StatusNotFound)
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil || stat.IsDir() {
		http.Error(w, "index.html not found", http.StatusNotFound)
		return
	}
	http.ServeContent(w, r, indexFile, stat.ModTime(), f)
}

func isFile(name string) bool {
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}
