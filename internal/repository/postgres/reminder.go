package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/sakif/plant-care/internal/model"
	"github.com/sakif/plant-care/internal/repository"
)

func (db *DB) ListActiveReminders(ctx context.Context) ([]model.Reminder, error) {
	q := db.sb.Select(repository.ReminderColumns.Select()...).
		From("reminders r").
		Join("plants p ON r.plant_id = p.id").
		Where(sq.Eq{"r.is_done": false}).
		OrderBy("r.due_date ASC NULLS LAST", "r.id ASC")

	reminders := []model.Reminder{}
	if err := db.selectInto(ctx, &reminders, q); err != nil {
		return nil, fmt.Errorf("postgres: listing reminders: %w", err)
	}
	return reminders, nil
}

func (db *DB) CreateReminder(ctx context.Context, r model.NewReminder) (int64, error) {
	q := db.sb.Insert("reminders").
		Columns("plant_id", "type", "due_date").
		Values(r.PlantID, r.Type, repository.DateArg(r.DueDate))

	id, err := db.insert(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("postgres: creating reminder: %w", err)
	}
	return id, nil
}

func (db *DB) CompleteReminder(ctx context.Context, id int64) error {
	q := db.sb.Update("reminders").
		Set("is_done", true).
		Where(sq.Eq{"id": id})

	if err := db.exec(ctx, q); err != nil {
		return fmt.Errorf("postgres: completing reminder %d: %w", id, err)
	}
	return nil
}
