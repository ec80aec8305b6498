package cmd

import (
	"fmt"

	"quizdeck/internal/app"
	"quizdeck/internal/quiz"
	"quizdeck/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads the question bank, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	bank, err := quiz.LoadDir(resolveBanksDir(cmd))
	if err != nil {
		return fmt.Errorf("load question banks: %w", err)
	}

	// Imported quizzes join the bank as custom sources.
	customs, err := st.CustomQuizRepo().List(ctx)
	if err != nil {
		return fmt.Errorf("load custom quizzes: %w", err)
	}
	for _, cq := range customs {
		bank.AddSource(cq.ID, cq.Name, cq.Questions, true)
	}

	if bank.Len() == 0 {
		return fmt.Errorf("no questions found in %s (import one with 'quizdeck import <file>')", resolveBanksDir(cmd))
	}

	return app.Run(app.Options{
		Bank:     bank,
		Progress: st.ProgressRepo(),
		History:  st.HistoryRepo(),
		Customs:  st.CustomQuizRepo(),
	})
}
