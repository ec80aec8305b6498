package store

import (
	"context"
	"fmt"

	"quizdeck/ent"
	"quizdeck/ent/customquiz"
	"quizdeck/ent/progress"
)

// customQuizRepo implements CustomQuizRepo using the ent client.
type customQuizRepo struct {
	client *ent.Client
}

func (r *customQuizRepo) Save(ctx context.Context, cq *CustomQuiz) error {
	data, err := toMap(cq)
	if err != nil {
		return fmt.Errorf("marshal custom quiz: %w", err)
	}

	_, err = r.client.CustomQuiz.Create().
		SetQuizID(cq.ID).
		SetName(cq.Name).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save custom quiz: %w", err)
	}
	return nil
}

func (r *customQuizRepo) List(ctx context.Context) ([]*CustomQuiz, error) {
	rows, err := r.client.CustomQuiz.Query().
		Order(ent.Asc(customquiz.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query custom quizzes: %w", err)
	}

	out := make([]*CustomQuiz, 0, len(rows))
	for _, row := range rows {
		var cq CustomQuiz
		if err := fromMap(row.Data, &cq); err != nil {
			return nil, fmt.Errorf("unmarshal custom quiz %s: %w", row.QuizID, err)
		}
		cq.ID = row.QuizID
		cq.Name = row.Name
		cq.UploadedAt = row.UploadedAt
		out = append(out, &cq)
	}
	return out, nil
}

func (r *customQuizRepo) Delete(ctx context.Context, quizID string) error {
	_, err := r.client.CustomQuiz.Delete().
		Where(customquiz.QuizIDEQ(quizID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete custom quiz: %w", err)
	}

	// A deleted set's saved attempt is meaningless; drop it too.
	_, err = r.client.Progress.Delete().
		Where(progress.QuizIDEQ(quizID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete custom quiz progress: %w", err)
	}
	return nil
}
