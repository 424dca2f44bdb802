package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobclip/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and change persisted preferences",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current settings",
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting (keys: auto-extract, notifications, api-url)",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsGet(cmd *cobra.Command, _ []string) error {
	cfg, err := settings.Load()
	if err != nil {
		return err
	}

	path, err := settings.Path()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "auto-extract:   %t\n", cfg.AutoExtract)
	fmt.Fprintf(cmd.OutOrStdout(), "notifications:  %t\n", cfg.ShowNotifications)
	fmt.Fprintf(cmd.OutOrStdout(), "api-url:        %s\n", cfg.APIBaseURL)
	fmt.Fprintf(cmd.OutOrStdout(), "settings file:  %s\n", path)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	updated, err := settings.Set(key, value)
	if err != nil {
		// The prior valid value is retained; tell the user what was rejected
		return fmt.Errorf("setting %q not changed: %w", key, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved. auto-extract=%t notifications=%t api-url=%s\n",
		updated.AutoExtract, updated.ShowNotifications, updated.APIBaseURL)
	return nil
}
