package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/userboard/pkg/client"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server, user and feed status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			state, count := "ready", 0
			ready, err := apiClient.Ready(ctx)
			if err != nil {
				apiErr, ok := client.AsAPIError(err)
				switch {
				case ok && apiErr.IsLoadFailure():
					state = "error"
				case ok && apiErr.Code == "SERVICE_UNAVAILABLE":
					state = "loading"
				default:
					return fmt.Errorf("server unreachable: %w", err)
				}
			} else {
				count = ready.Users
			}

			feed, feedErr := apiClient.Feed().Status(ctx)
			view := loadView()

			if getOutputFormat() != "table" {
				summary := map[string]interface{}{
					"users": map[string]interface{}{"state": state, "count": count},
					"view":  view,
				}
				if feedErr == nil {
					summary["feed"] = feed
				}
				return printOutput(summary)
			}

			fmt.Fprintln(out, "Userboard")
			fmt.Fprintln(out, strings.Repeat("=", 40))
			fmt.Fprintf(out, "  Users:     %s (%d loaded)\n", formatStatus(state), count)
			if feedErr != nil {
				fmt.Fprintf(out, "  Feed:      (error: %v)\n", feedErr)
			} else {
				fmt.Fprintf(out, "  Feed:      %s, %d added\n", formatStatus(feedState(feed)), feed.Added)
			}
			fmt.Fprintf(out, "  View:      page %d, %d per page", view.Page, view.PageSize)
			if view.Sort.Key != "" {
				fmt.Fprintf(out, ", sorted by %s %s", view.Sort.Key, view.Sort.Direction)
			}
			if view.SearchTerm != "" {
				fmt.Fprintf(out, ", search %q", view.SearchTerm)
			}
			fmt.Fprintln(out)

			return nil
		},
	}
}
