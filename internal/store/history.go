package store

import (
	"context"
	"fmt"

	"quizdeck/ent"
	"quizdeck/ent/historyentry"
)

// historyRepo implements HistoryRepo using the ent client.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Append(ctx context.Context, entry *HistoryEntry) error {
	data, err := toMap(entry)
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}

	create := r.client.HistoryEntry.Create().
		SetTitle(entry.Title).
		SetScore(entry.Score).
		SetTotal(entry.Total).
		SetData(data)
	if !entry.TakenAt.IsZero() {
		create.SetTakenAt(entry.TakenAt)
	}
	_, err = create.Save(ctx)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}

	return r.prune(ctx, HistoryLimit)
}

func (r *historyRepo) List(ctx context.Context) ([]*HistoryEntry, error) {
	rows, err := r.client.HistoryEntry.Query().
		Order(ent.Asc(historyentry.FieldTakenAt), ent.Asc(historyentry.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	out := make([]*HistoryEntry, 0, len(rows))
	for _, row := range rows {
		var entry HistoryEntry
		if err := fromMap(row.Data, &entry); err != nil {
			return nil, fmt.Errorf("unmarshal history entry %d: %w", row.ID, err)
		}
		entry.ID = row.ID
		entry.Title = row.Title
		entry.TakenAt = row.TakenAt
		entry.Score = row.Score
		entry.Total = row.Total
		out = append(out, &entry)
	}
	return out, nil
}

// prune deletes all but the keep most recent entries.
func (r *historyRepo) prune(ctx context.Context, keep int) error {
	stale, err := r.client.HistoryEntry.Query().
		Order(ent.Desc(historyentry.FieldTakenAt), ent.Desc(historyentry.FieldID)).
		Offset(keep).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("query history for prune: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	_, err = r.client.HistoryEntry.Delete().
		Where(historyentry.IDIn(stale...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}
