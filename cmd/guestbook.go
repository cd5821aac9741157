package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/guestbook"
	"github.com/Zachkp/portfolio/internal/tui"
)

var (
	guestbookURL string
	guestbookMax string
	guestbookLog string
)

var guestbookCmd = &cobra.Command{
	Use:   "guestbook",
	Short: "Browse the guestbook of a running server in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if guestbookURL != "" {
			cfg.Guestbook.BaseURL = guestbookURL
		}
		if guestbookMax != "" {
			cfg.Guestbook.MaxComments = guestbookMax
		}
		if v := strings.TrimSpace(cfg.Guestbook.MaxComments); v != "" {
			if _, err := guestbook.ParseSelector(v); err != nil {
				return err
			}
		}

		// The terminal belongs to the UI, so logs go to a file or nowhere.
		var logOut io.Writer = io.Discard
		if guestbookLog != "" {
			f, err := os.OpenFile(guestbookLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer f.Close()
			logOut = f
		}

		src := guestbook.NewHTTPSource(cfg.Guestbook.BaseURL, cfg.Guestbook.Timeout)
		return tui.Run(cmd.Context(), src, tui.Renderer{BarWidth: 30}, cfg.Guestbook.MaxComments, newLogger(logOut))
	},
}

func init() {
	guestbookCmd.Flags().StringVar(&guestbookURL, "url", "", "server base URL (default from config)")
	guestbookCmd.Flags().StringVarP(&guestbookMax, "max-comments", "n", "", `comments to show, a number or "all"`)
	guestbookCmd.Flags().StringVar(&guestbookLog, "log-file", "", "write logs to this file")
	rootCmd.AddCommand(guestbookCmd)
}
