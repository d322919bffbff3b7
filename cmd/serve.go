package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danishanwar/portfolio/internal/contact"
	"github.com/danishanwar/portfolio/internal/db"
	"github.com/danishanwar/portfolio/internal/inbox"
	"github.com/danishanwar/portfolio/internal/livereload"
	"github.com/danishanwar/portfolio/internal/notifications"
	"github.com/danishanwar/portfolio/internal/server"
	"github.com/danishanwar/portfolio/internal/site"
)

const shutdownTimeout = 10 * time.Second

var (
	servePort  int
	serveWatch bool
	serveOpen  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio page and the contact endpoint",
	Long: `Starts the HTTP server hosting the rendered page, its static assets and
POST /api/contact. With --watch the page is re-rendered whenever the config
file changes and open tabs reload themselves.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		renderer, err := site.NewRenderer()
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		renderer.LiveReload = serveWatch

		pages, err := site.NewHandler(renderer, cfg.Site)
		if err != nil {
			return fmt.Errorf("rendering page: %w", err)
		}

		recorders := contact.Recorders{contact.NewLogRecorder(logger)}
		if cfg.Contact.Archive {
			dbPath := filepath.Join(cfg.Contact.DataDir, db.FileName)
			database, err := db.Open(dbPath)
			if err != nil {
				return fmt.Errorf("opening archive: %w", err)
			}
			defer database.Close()
			recorders = append(recorders, inbox.NewStore(database))
			logger.Info("archiving contact submissions", zap.String("path", dbPath))
		}
		if cfg.Contact.WebhookURL != "" {
			recorders = append(recorders, notifications.NewDispatcher(cfg.Contact.WebhookURL, logger))
		}

		srv := server.New(server.Config{
			Port:           cfg.Server.Port,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			AllowAll:       cfg.Server.AllowAll,
		}, logger)

		r := srv.Router()
		pages.RegisterRoutes(r)
		contact.RegisterRoutes(r, contact.NewHandler(recorders, cfg.ContactDelay(), cfg.Contact.MaxBodyBytes, logger))

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var hub *livereload.Hub
		if serveWatch {
			hub = livereload.NewHub(logger)
			hub.RegisterRoutes(r)

			watcher := livereload.NewWatcher(cfgFile, func() { reloadSite(pages, hub, logger) }, logger)
			go func() {
				if err := watcher.Run(ctx); err != nil {
					logger.Warn("config watcher stopped", zap.Error(err))
				}
			}()
		}

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "portfolio %s serving %s\n", Version, url)
		if serveOpen {
			site.OpenBrowser(url)
		}

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		if hub != nil {
			hub.Close()
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return <-errCh
	},
}

// reloadSite re-reads the config and swaps the served page. Server and
// contact settings only take effect on restart.
func reloadSite(pages *site.Handler, hub *livereload.Hub, logger *zap.Logger) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Warn("config reload failed, keeping current page", zap.Error(err))
		return
	}
	if err := pages.Reload(cfg.Site); err != nil {
		logger.Warn("page render failed, keeping current page", zap.Error(err))
		return
	}
	logger.Info("page reloaded", zap.Int("clients", hub.Clients()))
	hub.Broadcast(livereload.ReloadMessage)
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "re-render and reload open pages when the config changes")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the page in the default browser")
	rootCmd.AddCommand(serveCmd)
}
