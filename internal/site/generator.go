package site

import (
	"bytes"
	"fmt"
	"html/template"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/danishanwar/portfolio/internal/config"
	"github.com/danishanwar/portfolio/internal/sections"
)

// particleCount is the number of decorative floating dots in the hero.
const particleCount = 20

// Renderer turns site content into the HTML page.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	tmpl   *template.Template
	now    func() time.Time

	// LiveReload adds the reload socket hook to rendered pages.
	LiveReload bool
	// BasePath prefixes asset URLs; empty for pages served from the site root.
	BasePath string
}

// NewRenderer creates a Renderer.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &Renderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: policy,
		tmpl:   tmpl,
		now:    time.Now,
	}, nil
}

type navItem struct {
	ID     string
	Anchor string
	Title  string
	Active bool
}

type projectView struct {
	Title       string
	Description template.HTML
	Tech        []string
	Image       string
	URL         string
}

type particle struct {
	Left, Top, Delay, Duration string
}

// pageData holds the data passed to the HTML template.
type pageData struct {
	Name, Brand, Tagline, Headline string
	About                          []template.HTML
	Skills                         []string
	Philosophy                     string
	ProjectsIntro                  string
	Projects                       []projectView
	ContactIntro                   string
	Email, Website                 string
	GitHub, LinkedIn               string
	Theme                          config.Theme
	Nav                            []navItem
	SectionIDs                     string
	FixedOffset                    int
	Particles                      []particle
	Year                           int
	LiveReload                     bool
	BasePath                       string
}

// Render produces the full HTML page for the given content.
func (r *Renderer) Render(s config.SiteConfig) ([]byte, error) {
	data := pageData{
		Name:          s.Name,
		Brand:         s.Brand,
		Tagline:       s.Tagline,
		Headline:      s.Headline,
		Skills:        s.Skills,
		Philosophy:    s.Philosophy,
		ProjectsIntro: s.ProjectsIntro,
		ContactIntro:  s.ContactIntro,
		Email:         s.Email,
		Website:       s.Website,
		GitHub:        linkOrHash(s.Socials.GitHub),
		LinkedIn:      linkOrHash(s.Socials.LinkedIn),
		Theme:         s.Theme,
		FixedOffset:   sections.FixedOffset,
		Particles:     particles(particleCount),
		Year:          r.now().Year(),
		LiveReload:    r.LiveReload,
		BasePath:      r.BasePath,
	}
	if data.Brand == "" {
		data.Brand = strings.ReplaceAll(s.Name, " ", "")
	}
	if data.Theme == "" {
		data.Theme = config.ThemeDark
	}

	active := sections.Default()
	var ids []string
	for _, sec := range sections.All() {
		ids = append(ids, string(sec))
		data.Nav = append(data.Nav, navItem{
			ID:     string(sec),
			Anchor: sec.Anchor(),
			Title:  sec.Title(),
			Active: sec == active,
		})
	}
	data.SectionIDs = strings.Join(ids, ",")

	for i, para := range s.About {
		h, err := r.markdown(para)
		if err != nil {
			return nil, fmt.Errorf("rendering about paragraph %d: %w", i, err)
		}
		data.About = append(data.About, h)
	}

	for _, p := range s.Projects {
		desc, err := r.markdown(p.Description)
		if err != nil {
			return nil, fmt.Errorf("rendering project %q: %w", p.Title, err)
		}
		data.Projects = append(data.Projects, projectView{
			Title:       p.Title,
			Description: desc,
			Tech:        p.Tech,
			Image:       p.Image,
			URL:         p.URL,
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return buf.Bytes(), nil
}

// markdown converts a markdown fragment to sanitized HTML.
func (r *Renderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

func linkOrHash(u string) string {
	if strings.TrimSpace(u) == "" {
		return "#"
	}
	return u
}

func particles(n int) []particle {
	out := make([]particle, n)
	for i := range out {
		out[i] = particle{
			Left:     pct(rand.Float64() * 100),
			Top:      pct(rand.Float64() * 100),
			Delay:    pct(rand.Float64() * 5),
			Duration: pct(3 + rand.Float64()*4),
		}
	}
	return out
}

func pct(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

// Export writes a self-contained static copy of the site to dir: index.html
// plus its stylesheet and script. It returns the number of files written.
func Export(dir string, page []byte) (int, error) {
	files := []struct {
		name string
		data []byte
	}{
		{"index.html", page},
		{filepath.Join("static", "style.css"), []byte(cssContent)},
		{filepath.Join("static", "app.js"), []byte(jsContent)},
	}

	if err := os.MkdirAll(filepath.Join(dir, "static"), 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.name), f.data, 0o644); err != nil {
			return 0, fmt.Errorf("writing %s: %w", f.name, err)
		}
	}
	return len(files), nil
}
