package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danishanwar/portfolio/internal/site"
)

var (
	buildOutput   string
	buildBasePath string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the page as static files",
	Long:  `Renders the page and writes index.html with its stylesheet and script to the output directory. The exported contact form still posts to /api/contact, so the files must be hosted next to a running endpoint for the form to work.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		renderer, err := site.NewRenderer()
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		renderer.BasePath = normalizeBasePath(buildBasePath)
		page, err := renderer.Render(cfg.Site)
		if err != nil {
			return fmt.Errorf("rendering page: %w", err)
		}

		n, err := site.Export(buildOutput, page)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d files to %s\n", n, buildOutput)
		return nil
	},
}

// normalizeBasePath makes a non-empty prefix end in a slash so asset paths
// can be appended directly.
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "dist", "output directory")
	buildCmd.Flags().StringVar(&buildBasePath, "base-path", "", "URL prefix for asset links when the page is hosted below the site root (e.g. /portfolio/)")
	rootCmd.AddCommand(buildCmd)
}
