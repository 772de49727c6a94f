package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pratik-mahalle/userboard/internal/domain/user"
)

var outputFormats = []string{"table", "json", "yaml"}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigListCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Interactive first-time setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := promptDefault("Enter server URL", "http://localhost:8080")

			format := promptDefault("Default output format (table/json/yaml)", "table")
			if !slices.Contains(outputFormats, format) {
				return fmt.Errorf("unsupported output format %q", format)
			}

			size, err := strconv.Atoi(promptDefault("Default page size (5/10/15)", strconv.Itoa(user.DefaultPageSize)))
			if err != nil {
				return fmt.Errorf("page size must be a number: %w", err)
			}
			view, err := user.NewViewState().WithPageSize(size)
			if err != nil {
				return err
			}

			viper.Set("server_url", url)
			viper.Set("output", format)
			if err := saveView(view); err != nil {
				return err
			}

			path, _ := configPath()
			fmt.Fprintf(out, "Configuration saved to %s\n", path)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if key == "output" && !slices.Contains(outputFormats, value) {
				return fmt.Errorf("output must be one of %v", outputFormats)
			}

			viper.Set(key, value)
			if err := writeConfig(); err != nil {
				return err
			}
			fmt.Fprintf(out, "Set %s = %s\n", key, value)
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			val := viper.Get(args[0])
			if val == nil {
				fmt.Fprintf(out, "%s: (not set)\n", args[0])
			} else {
				fmt.Fprintf(out, "%s: %v\n", args[0], val)
			}
			return nil
		},
	}
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := viper.AllKeys()
			slices.Sort(keys)
			for _, key := range keys {
				fmt.Fprintf(out, "%s: %v\n", key, viper.Get(key))
			}
			return nil
		},
	}
}

func promptDefault(label, def string) string {
	answer := strings.TrimSpace(promptInput(fmt.Sprintf("%s [%s]: ", label, def)))
	if answer == "" {
		return def
	}
	return answer
}
