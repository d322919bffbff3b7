package config

// DefaultAllowedOrigins are the CORS origins accepted unless allow_all is set.
var DefaultAllowedOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}

var defaultProjects = []Project{
	{
		Title:       "Travel Explorer",
		Description: "AI-powered travel recommendation system",
		Tech:        []string{"React", "Node.js", "TensorFlow"},
		Image:       "https://images.unsplash.com/photo-1503220317375-aaad61436b1b?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
	},
	{
		Title:       "Virtual Tours",
		Description: "Immersive 3D experiences for destinations",
		Tech:        []string{"Three.js", "WebXR", "Unity"},
		Image:       "https://images.unsplash.com/photo-1557804519-01e0a961c78e?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
	},
	{
		Title:       "Travel Analytics",
		Description: "Data-driven insights for travel businesses",
		Tech:        []string{"Python", "D3.js", "MongoDB"},
		Image:       "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&q=80",
	},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	projects := make([]Project, len(defaultProjects))
	copy(projects, defaultProjects)

	return &Config{
		Server: ServerConfig{
			Port:           3000,
			AllowedOrigins: append([]string(nil), DefaultAllowedOrigins...),
		},
		Site: SiteConfig{
			Name:     "Danish Anwar",
			Brand:    "DanishAnwar",
			Tagline:  "Visionary Creator | Tech Innovator | Travel Enthusiast",
			Headline: "Visionary Tech Creator",
			About: []string{
				"I'm a deeply introspective, multi-dimensional visionary who doesn't settle for surface-level living. " +
					"I constantly question, improve, and analyze everything: technology, society, and human potential.",
				"With a rare mix of logic and imagination, I'm a builder, a thinker, and a dreamer all at once. " +
					"I have a strong passion for creating systems that blend technology with human values.",
			},
			Skills:        []string{"React", "Three.js", "AI/ML", "Game Engines", "Innovation", "Design"},
			Philosophy:    "Creating what's never existed before, with purpose and precision.",
			ProjectsIntro: "A collection of innovative projects that showcase my vision for the future of technology and travel",
			Projects:      projects,
			ContactIntro: "I'm always interested in new opportunities and innovative projects. " +
				"Whether you have a question or just want to say hi, feel free to reach out!",
			Email:   "danish.anwar@example.com",
			Website: "danishanwar.dev",
			Theme:   ThemeDark,
		},
		Contact: ContactConfig{
			DelayMS:      1000,
			MaxBodyBytes: 64 * 1024,
			Archive:      false,
			DataDir:      ".portfolio",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
