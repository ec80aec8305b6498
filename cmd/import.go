package cmd

import (
	"fmt"
	"time"

	"quizdeck/internal/quiz"
	"quizdeck/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a custom quiz from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, questions, err := quiz.LoadFile(args[0])
		if err != nil {
			return err
		}

		if name, _ := cmd.Flags().GetString("name"); name != "" {
			title = name
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

		cq := &store.CustomQuiz{
			ID:         uuid.New().String(),
			Name:       title,
			Questions:  questions,
			UploadedAt: time.Now(),
		}
		if err := st.CustomQuizRepo().Save(cmd.Context(), cq); err != nil {
			return fmt.Errorf("save custom quiz: %w", err)
		}

		fmt.Printf("Imported %q (%d questions)\n", title, len(questions))
		return nil
	},
}

func init() {
	importCmd.Flags().String("name", "", "Override the quiz name")
}
