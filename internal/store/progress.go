package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quizdeck/ent"
	"quizdeck/ent/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Save(ctx context.Context, snap *ProgressSnapshot) error {
	data, err := toMap(snap)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	n, err := r.client.Progress.Update().
		Where(progress.QuizIDEQ(snap.QuizID)).
		SetData(data).
		SetSavedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Progress.Create().
		SetQuizID(snap.QuizID).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Load(ctx context.Context, quizID string) (*ProgressSnapshot, error) {
	row, err := r.client.Progress.Query().
		Where(progress.QuizIDEQ(quizID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}

	var snap ProgressSnapshot
	if err := fromMap(row.Data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal progress: %w", err)
	}
	snap.QuizID = row.QuizID
	snap.SavedAt = row.SavedAt
	return &snap, nil
}

func (r *progressRepo) Delete(ctx context.Context, quizID string) error {
	_, err := r.client.Progress.Delete().
		Where(progress.QuizIDEQ(quizID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}

func (r *progressRepo) ActiveQuizIDs(ctx context.Context) (map[string]bool, error) {
	ids, err := r.client.Progress.Query().
		Select(progress.FieldQuizID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active quiz ids: %w", err)
	}
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

// toMap converts a domain struct to map[string]any for ent JSON storage.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// fromMap converts an ent JSON column back into a domain struct.
func fromMap(m map[string]any, v any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
