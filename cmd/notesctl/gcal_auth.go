package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"habit-notes/pkg/gcalendar"
)

// newGcalAuthCmd authorizes Google Calendar access once and stores the OAuth
// token where the service looks for it.
func newGcalAuthCmd() *cobra.Command {
	var (
		credsPath string
		tokenPath string
	)

	cmd := &cobra.Command{
		Use:   "gcal-auth",
		Short: "Authorize Google Calendar and write token.json",
		Long: `Opens the OAuth consent flow for a Desktop App credentials file. Visit the
printed URL, sign in, paste the authorization code and the token is saved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("failed to read credentials file %q: %w", credsPath, err)
			}

			cfg, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
			if err != nil {
				return fmt.Errorf("failed to parse credentials (need an OAuth Desktop App file): %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Step 1: open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "Step 2: paste the authorization code and press Enter: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}

			tok, err := cfg.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("failed to exchange authorization code: %w", err)
			}

			f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", tokenPath, err)
			}
			defer f.Close()

			if err := json.NewEncoder(f).Encode(tok); err != nil {
				return fmt.Errorf("failed to write %s: %w", tokenPath, err)
			}

			fmt.Fprintf(out, "\nToken saved to %s. Restart the service to enable reminder scheduling.\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&credsPath, "credentials", "google-credentials.json", "OAuth Desktop App credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.DefaultTokenPath, "where to write the token")
	return cmd
}
