package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danishanwar/portfolio/internal/db"
	"github.com/danishanwar/portfolio/internal/inbox"
)

var inboxLimit int

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "List archived contact submissions",
	Long:  `Prints the newest archived contact submissions. Archiving is enabled with contact.archive in the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dbPath := filepath.Join(cfg.Contact.DataDir, db.FileName)
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Printf("No archive at %s. Set contact.archive: true and restart the server to keep submissions.\n", dbPath)
			return nil
		}

		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening archive: %w", err)
		}
		defer database.Close()

		store := inbox.NewStore(database)
		ctx := context.Background()

		total, err := store.Count(ctx)
		if err != nil {
			return err
		}
		entries, err := store.List(ctx, inboxLimit)
		if err != nil {
			return err
		}

		fmt.Printf("%d submission(s), showing %d\n", total, len(entries))
		for _, e := range entries {
			fmt.Println(strings.Repeat("-", 60))
			fmt.Printf("%s  %s <%s>\n", e.ReceivedAt.Local().Format("2006-01-02 15:04"), e.Name, e.Email)
			if e.RemoteAddr != "" {
				fmt.Printf("from %s  id %s\n", e.RemoteAddr, e.ID)
			} else {
				fmt.Printf("id %s\n", e.ID)
			}
			fmt.Println()
			fmt.Println(e.Message)
		}
		return nil
	},
}

func init() {
	inboxCmd.Flags().IntVarP(&inboxLimit, "limit", "n", 20, "maximum submissions to show (0 for all)")
	rootCmd.AddCommand(inboxCmd)
}
