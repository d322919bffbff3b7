package config

// Theme is the color scheme the page starts in.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Config is the top-level portfolio configuration, corresponding to portfolio.yml.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Contact ContactConfig `yaml:"contact" koanf:"contact"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port           int      `yaml:"port" koanf:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	AllowAll       bool     `yaml:"allow_all" koanf:"allow_all"`
}

// SiteConfig is the content of the rendered page.
type SiteConfig struct {
	Name          string      `yaml:"name" koanf:"name"`
	Brand         string      `yaml:"brand" koanf:"brand"`
	Tagline       string      `yaml:"tagline" koanf:"tagline"`
	Headline      string      `yaml:"headline" koanf:"headline"`
	About         []string    `yaml:"about" koanf:"about"` // markdown paragraphs
	Skills        []string    `yaml:"skills" koanf:"skills"`
	Philosophy    string      `yaml:"philosophy" koanf:"philosophy"`
	ProjectsIntro string      `yaml:"projects_intro" koanf:"projects_intro"`
	Projects      []Project   `yaml:"projects" koanf:"projects"`
	ContactIntro  string      `yaml:"contact_intro" koanf:"contact_intro"`
	Email         string      `yaml:"email" koanf:"email"`
	Website       string      `yaml:"website" koanf:"website"`
	Socials       SocialLinks `yaml:"socials" koanf:"socials"`
	Theme         Theme       `yaml:"theme" koanf:"theme"`
}

// Project is one card in the project gallery.
type Project struct {
	Title       string   `yaml:"title" koanf:"title"`
	Description string   `yaml:"description" koanf:"description"` // markdown
	Tech        []string `yaml:"tech" koanf:"tech"`
	Image       string   `yaml:"image" koanf:"image"`
	URL         string   `yaml:"url" koanf:"url"`
}

// SocialLinks are profile links shown in the contact block and footer.
type SocialLinks struct {
	GitHub   string `yaml:"github" koanf:"github"`
	LinkedIn string `yaml:"linkedin" koanf:"linkedin"`
}

// ContactConfig tunes the contact endpoint.
type ContactConfig struct {
	DelayMS      int    `yaml:"delay_ms" koanf:"delay_ms"`
	MaxBodyBytes int64  `yaml:"max_body_bytes" koanf:"max_body_bytes"`
	Archive      bool   `yaml:"archive" koanf:"archive"`
	DataDir      string `yaml:"data_dir" koanf:"data_dir"`
	// WebhookURL, when set, receives a JSON copy of every accepted submission.
	WebhookURL string `yaml:"webhook_url" koanf:"webhook_url"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"` // json or console
}
