package cmd

import (
	"fmt"

	"quizdeck/internal/quiz"
	"quizdeck/internal/store"
	"github.com/spf13/cobra"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List loaded question banks and custom quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := quiz.LoadDir(resolveBanksDir(cmd))
		if err != nil {
			return fmt.Errorf("load question banks: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		customs, err := st.CustomQuizRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("load custom quizzes: %w", err)
		}

		chapters := bank.Chapters()
		if len(chapters) == 0 && len(customs) == 0 {
			fmt.Println("No question banks found.")
			return nil
		}

		for _, ch := range chapters {
			fmt.Printf("%-40s  %4d questions\n", ch.Name, ch.Count)
		}
		for _, cq := range customs {
			fmt.Printf("%-40s  %4d questions  (custom, imported %s)\n",
				cq.Name, len(cq.Questions), cq.UploadedAt.Format("2006-01-02"))
		}
		return nil
	},
}
