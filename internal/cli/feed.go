package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/userboard/pkg/client"
)

func newFeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Control the random user feed",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start appending random users",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, st, err := apiClient.Feed().Start(context.Background())
			if err != nil {
				return fmt.Errorf("failed to start feed: %w", err)
			}
			return printFeed(msg, st)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Stop the feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, st, err := apiClient.Feed().Stop(context.Background())
			if err != nil {
				return fmt.Errorf("failed to stop feed: %w", err)
			}
			return printFeed(msg, st)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the feed state",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := apiClient.Feed().Status(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get feed status: %w", err)
			}
			return printFeed("", st)
		},
	})

	return cmd
}

func printFeed(msg string, st *client.FeedStatus) error {
	if getOutputFormat() != "table" {
		return printOutput(st)
	}

	if msg != "" {
		fmt.Fprintln(out, msg)
	}
	fmt.Fprintf(out, "  Feed:     %s (every %s)\n", formatStatus(feedState(st)), st.Interval)
	fmt.Fprintf(out, "  Added:    %d\n", st.Added)
	fmt.Fprintf(out, "  Failed:   %d\n", st.Failed)
	if st.LastError != "" {
		fmt.Fprintf(out, "  Last err: %s\n", st.LastError)
	}
	return nil
}

func feedState(st *client.FeedStatus) string {
	if st.Running {
		return "running"
	}
	return "stopped"
}
