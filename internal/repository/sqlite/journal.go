package sqlite

import (
	"context"
	"fmt"

	"github.com/sakif/plant-care/internal/model"
	"github.com/sakif/plant-care/internal/repository"
)

func (db *DB) ListJournalEntries(ctx context.Context) ([]model.JournalEntry, error) {
	q := db.sb.Select(repository.JournalColumns.Select()...).
		From("journal_entries j").
		Join("plants p ON j.plant_id = p.id").
		OrderBy("j.entry_date DESC", "j.created_at DESC", "j.id DESC")

	entries := []model.JournalEntry{}
	if err := db.selectInto(ctx, &entries, q); err != nil {
		return nil, fmt.Errorf("sqlite: listing journal entries: %w", err)
	}
	return entries, nil
}

func (db *DB) CreateJournalEntry(ctx context.Context, e model.NewJournalEntry) (int64, error) {
	q := db.sb.Insert("journal_entries")
	// Leaving entry_date out lets the column default (CURRENT_DATE) apply.
	if e.EntryDate != nil {
		q = q.Columns("plant_id", "entry_date", "tag", "text").
			Values(e.PlantID, repository.DateArg(e.EntryDate), e.Tag, e.Text)
	} else {
		q = q.Columns("plant_id", "tag", "text").
			Values(e.PlantID, e.Tag, e.Text)
	}

	id, err := db.insert(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("sqlite: creating journal entry: %w", err)
	}
	return id, nil
}
