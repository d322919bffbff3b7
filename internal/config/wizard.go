package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

func required(label string) promptui.ValidateFunc {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + " is required")
		}
		return nil
	}
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it. Answers not asked for keep their defaults.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to portfolio! Let's set up your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Name.
	namePrompt := promptui.Prompt{
		Label:    "Your name",
		Default:  cfg.Site.Name,
		Validate: required("name"),
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	cfg.Site.Name = strings.TrimSpace(name)
	cfg.Site.Brand = strings.ReplaceAll(cfg.Site.Name, " ", "")

	// 2. Tagline.
	taglinePrompt := promptui.Prompt{
		Label:   "Tagline",
		Default: cfg.Site.Tagline,
	}
	tagline, err := taglinePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("tagline: %w", err)
	}
	cfg.Site.Tagline = strings.TrimSpace(tagline)

	// 3. Contact email.
	emailPrompt := promptui.Prompt{
		Label:    "Contact email",
		Default:  cfg.Site.Email,
		Validate: required("email"),
	}
	email, err := emailPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("email: %w", err)
	}
	cfg.Site.Email = strings.TrimSpace(email)

	// 4. Theme.
	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: []string{string(ThemeDark), string(ThemeLight)},
	}
	_, theme, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Site.Theme = Theme(theme)

	// 5. Archive.
	archivePrompt := promptui.Prompt{
		Label:     "Keep a local archive of contact submissions",
		IsConfirm: true,
	}
	if _, err := archivePrompt.Run(); err == nil {
		cfg.Contact.Archive = true
	} else if !errors.Is(err, promptui.ErrAbort) {
		return nil, fmt.Errorf("archive: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
