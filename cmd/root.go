package cmd

import (
	"os"

	"quizdeck/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Terminal quiz runner",
	Long:  "QuizDeck — take multiple-choice quizzes from JSON question banks in your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDECK_DB env var)")
	rootCmd.PersistentFlags().String("banks", "", "Directory of question-bank JSON files (overrides QUIZDECK_BANKS env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(banksCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveBanksDir returns the question-bank directory using --banks,
// then QUIZDECK_BANKS, then ./banks.
func resolveBanksDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("banks"); p != "" {
		return p
	}
	if p := os.Getenv("QUIZDECK_BANKS"); p != "" {
		return p
	}
	return "banks"
}
