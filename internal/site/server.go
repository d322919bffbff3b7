package site

import (
	"net/http"
	"os/exec"
	"runtime"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/danishanwar/portfolio/internal/config"
)

// Handler serves the rendered page and its assets. The page can be swapped
// at runtime with Reload.
type Handler struct {
	renderer *Renderer

	mu   sync.RWMutex
	page []byte
}

// NewHandler renders the initial page.
func NewHandler(renderer *Renderer, s config.SiteConfig) (*Handler, error) {
	page, err := renderer.Render(s)
	if err != nil {
		return nil, err
	}
	return &Handler{renderer: renderer, page: page}, nil
}

// Reload re-renders the page. On failure the previous page keeps serving.
func (h *Handler) Reload(s config.SiteConfig) error {
	page, err := h.renderer.Render(s)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.page = page
	h.mu.Unlock()
	return nil
}

// Page returns the current rendered page.
func (h *Handler) Page() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.page
}

// RegisterRoutes mounts the page and asset routes onto the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.serveIndex)
	r.Get("/index.html", h.serveIndex)
	r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/static/app.js", serveAsset("text/javascript; charset=utf-8", jsContent))
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(h.Page())
}

func serveAsset(contentType, content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=300")
		w.Write([]byte(content))
	}
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
