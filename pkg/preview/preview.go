// Package preview serves rendered charts over HTTP so a theme can be tuned
// with a browser open next to the editor. Responses carry no-cache headers,
// making a plain reload show the latest render.
package preview

import (
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
)

// Port range tried when no explicit port is configured.
const (
	DefaultPort    = 9000
	portRangeStart = 9000
	portRangeEnd   = 9100
)

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head><title>plotglass preview</title></head>
<body style="font-family:sans-serif;background:#f4f4f8">
<h2>plotglass preview</h2>
{{range .}}<div><h3>{{.}}</h3><img src="/{{.}}" alt="{{.}}" style="border:1px solid #ccc;background:#fff"></div>
{{end}}</body>
</html>
`))

// Server serves a directory of rendered chart files with an index page
// listing the renders.
type Server struct {
	dir    string
	port   int
	server *http.Server
}

// NewServer creates a preview server over the given render directory.
func NewServer(dir string, port int) *Server {
	return &Server{dir: dir, port: port}
}

// Port returns the port the server listens on.
func (s *Server) Port() int { return s.port }

// URL returns the server's base URL.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.port)
}

// Start runs the server and blocks until it is shut down.
func (s *Server) Start() error {
	if _, err := os.Stat(s.dir); err != nil {
		return fmt.Errorf("render directory: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", noCache(s.root(http.FileServer(http.Dir(s.dir)))))
	mux.HandleFunc("/__preview__/status", s.status)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: mux,
	}
	return s.server.ListenAndServe()
}

// StartWithGracefulShutdown runs the server until SIGINT/SIGTERM, then
// shuts it down cleanly.
func (s *Server) StartWithGracefulShutdown() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-stop:
		return s.Stop()
	case err := <-errChan:
		return err
	}
}

// Stop shuts the server down, allowing in-flight requests to finish.
func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// root serves the generated index at "/" and defers everything else to the
// file server.
func (s *Server) root(files http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			files.ServeHTTP(w, r)
			return
		}
		renders := s.renderList()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTemplate.Execute(w, renders); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func (s *Server) renderList() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".png", ".svg":
			out = append(out, e.Name())
		}
	}
	return out
}

func (s *Server) status(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	fmt.Fprintf(w, `{"status":"running","port":%d,"dir":%q,"renders":%d}`,
		s.port, s.dir, len(s.renderList()))
}

// noCache adds headers preventing the browser from caching stale renders.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

// FindAvailablePort returns the first free TCP port in the preview range.
func FindAvailablePort() (int, error) {
	for port := portRangeStart; port <= portRangeEnd; port++ {
		l, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			l.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", portRangeStart, portRangeEnd)
}
