package site

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/danishanwar/portfolio/internal/config"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	r.now = func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }
	return r
}

func TestRenderDefaultSite(t *testing.T) {
	r := newTestRenderer(t)
	page, err := r.Render(config.DefaultConfig().Site)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(page)

	for _, want := range []string{
		`<section id="home"`,
		`<section id="about"`,
		`<section id="projects"`,
		`<section id="contact"`,
		`href="#home" data-section="home" class="nav-link active"`,
		`href="#about" data-section="about" class="nav-link"`,
		`data-fixed-offset="100"`,
		`data-sections="home,about,projects,contact"`,
		`<h1 class="gradient-text">Danish Anwar</h1>`,
		"Travel Explorer",
		"Virtual Tours",
		"Travel Analytics",
		`<span class="chip">Three.js</span>`,
		`class="dark"`,
		"&copy; 2026 Danish Anwar",
		`id="contact-form" action="/api/contact"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}

	if strings.Contains(html, "data-livereload") {
		t.Error("live reload hook should be off by default")
	}
	if got := strings.Count(html, `class="particle"`); got != particleCount {
		t.Errorf("particles = %d, want %d", got, particleCount)
	}
}

func TestRenderMarkdownSanitized(t *testing.T) {
	r := newTestRenderer(t)
	s := config.DefaultConfig().Site
	s.About = []string{"I build **fast** things. <script>alert(1)</script>"}
	s.Projects = []config.Project{{Title: "Engine", Description: "See [notes](https://example.com/notes)", URL: "https://example.com"}}

	page, err := r.Render(s)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(page)

	if !strings.Contains(html, "<strong>fast</strong>") {
		t.Error("expected markdown emphasis to render")
	}
	if strings.Contains(html, "<script>alert") {
		t.Error("raw script tag should be stripped")
	}
	if !strings.Contains(html, `href="https://example.com/notes"`) {
		t.Error("expected project description link")
	}
	if !strings.Contains(html, `rel="nofollow noopener"`) && !strings.Contains(html, `rel="nofollow"`) {
		t.Error("expected nofollow on user links")
	}
	if !strings.Contains(html, `<a href="https://example.com" class="btn btn-ghost"`) {
		t.Error("expected project link button")
	}
}

func TestRenderEscapesPlainFields(t *testing.T) {
	r := newTestRenderer(t)
	s := config.DefaultConfig().Site
	s.Name = `<b>Eve</b>`

	page, err := r.Render(s)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(page), "<b>Eve</b>") {
		t.Error("name must be HTML-escaped")
	}
}

func TestRenderLiveReloadAndSocials(t *testing.T) {
	r := newTestRenderer(t)
	r.LiveReload = true
	s := config.DefaultConfig().Site
	s.Socials.GitHub = "https://github.com/example"
	s.Theme = config.ThemeLight

	page, err := r.Render(s)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, `data-livereload="/ws/reload"`) {
		t.Error("expected live reload hook")
	}
	if !strings.Contains(html, `href="https://github.com/example"`) {
		t.Error("expected GitHub link")
	}
	if !strings.Contains(html, `aria-label="LinkedIn"`) || !strings.Contains(html, `href="#" class="social" aria-label="LinkedIn"`) {
		t.Error("empty LinkedIn link should fall back to #")
	}
	if !strings.Contains(html, `<html lang="en" class="light">`) {
		t.Error("expected light theme class")
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	n, err := Export(dir, []byte("<html></html>"))
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 3 {
		t.Errorf("files written = %d, want 3", n)
	}
	for _, name := range []string{"index.html", "static/style.css", "static/app.js"} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestHandlerRoutesAndReload(t *testing.T) {
	h, err := NewHandler(newTestRenderer(t), config.DefaultConfig().Site)
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	w := get("/")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Danish Anwar") {
		t.Fatalf("GET / = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if w := get("/static/app.js"); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "data-fixed-offset") {
		t.Errorf("GET /static/app.js = %d", w.Code)
	}
	if w := get("/static/style.css"); !strings.HasPrefix(w.Header().Get("Content-Type"), "text/css") {
		t.Errorf("style.css Content-Type = %q", w.Header().Get("Content-Type"))
	}

	s := config.DefaultConfig().Site
	s.Name = "Grace Hopper"
	if err := h.Reload(s); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if !strings.Contains(get("/").Body.String(), "Grace Hopper") {
		t.Error("reloaded page not served")
	}
}
