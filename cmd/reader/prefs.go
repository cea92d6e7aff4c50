package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taleweaver/pkg/catalog"
	"taleweaver/pkg/prefs"
)

var prefsOpts prefs.Preferences

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Store onboarding preferences for the next reader session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := prefs.DefaultPath()
		if err != nil {
			return err
		}
		if err := prefs.Save(path, prefsOpts); err != nil {
			return fmt.Errorf("save preferences: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Preferences saved for the next session (%s)\n", path)
		return nil
	},
}

func init() {
	prefsCmd.Flags().StringVar(&prefsOpts.Name, "name", "", "name shown in the welcome header")
	prefsCmd.Flags().StringVar(&prefsOpts.Genre, "genre", catalog.DefaultGenre, "preferred genre")
	prefsCmd.Flags().StringVar(&prefsOpts.Mood, "mood", catalog.DefaultMood, "preferred mood")
}
