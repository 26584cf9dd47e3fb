// Package repository defines the storage contracts the services depend on.
//
// Two adapters implement them: repository/postgres (production, pgx) and
// repository/sqlite (local development and tests, modernc). Services only
// ever see these interfaces, so neither driver leaks past this package.
//
// CONNECTION SCOPE:
// Every method acquires a pooled connection, runs its statement(s) and hands
// the connection back on every exit path. Nothing here holds a connection
// between calls.
package repository

import (
	"context"

	"github.com/sakif/plant-care/internal/model"
)

type PlantRepository interface {
	// ListPlants returns every plant, newest first.
	ListPlants(ctx context.Context) ([]model.Plant, error)
	// GetPlant returns apperror.ErrNotFound when no row has the id.
	GetPlant(ctx context.Context, id int64) (*model.Plant, error)
	// CreatePlant expects an already normalized input and stamps
	// last_watered with the store's current date.
	CreatePlant(ctx context.Context, p model.NewPlant) (int64, error)
	// UpdatePlant writes only the attributes set in the patch. An empty
	// patch issues no statement. A missing id is not an error.
	UpdatePlant(ctx context.Context, id int64, patch model.PlantPatch) error
	// WaterPlant sets last_watered to the store's current date.
	WaterPlant(ctx context.Context, id int64) error
}

type JournalRepository interface {
	// ListJournalEntries returns entries joined with their plant, latest
	// entry_date first.
	ListJournalEntries(ctx context.Context) ([]model.JournalEntry, error)
	// CreateJournalEntry falls back to the store's current date when
	// EntryDate is nil. PlantID must be set.
	CreateJournalEntry(ctx context.Context, e model.NewJournalEntry) (int64, error)
}

type ReminderRepository interface {
	// ListActiveReminders returns reminders not yet done, earliest due date
	// first and undated ones last.
	ListActiveReminders(ctx context.Context) ([]model.Reminder, error)
	CreateReminder(ctx context.Context, r model.NewReminder) (int64, error)
	CompleteReminder(ctx context.Context, id int64) error
}

type PostRepository interface {
	ListPosts(ctx context.Context) ([]model.CommunityPost, error)
	CreatePost(ctx context.Context, p model.NewPost) (int64, error)
	// LikePost increments likes in a single statement, so concurrent likes
	// never lose an update.
	LikePost(ctx context.Context, id int64) error
}

// Store is everything one storage backend provides.
type Store interface {
	PlantRepository
	JournalRepository
	ReminderRepository
	PostRepository

	Ping(ctx context.Context) error
	Close() error
}
