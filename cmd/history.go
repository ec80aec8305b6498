package cmd

import (
	"fmt"

	"quizdeck/internal/score"
	"quizdeck/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		entries, err := st.HistoryRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No attempts yet.")
			return nil
		}

		// Stored oldest first; print newest first.
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			percent := score.Percent(e.Score, e.Total)
			fmt.Printf("%s  %-32s  %3d/%-3d  %3d%%\n",
				e.TakenAt.Format("2006-01-02 15:04"), e.Title, e.Score, e.Total, percent)
		}
		return nil
	},
}
