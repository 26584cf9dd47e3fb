package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/sakif/plant-care/internal/apperror"
	"github.com/sakif/plant-care/internal/logging"
	"github.com/sakif/plant-care/internal/model"
	"github.com/sakif/plant-care/internal/repository"
)

// =========================================================================
// FAKE STORE
// =========================================================================
//
// fakeStore implements every repository interface in memory. It keeps rows
// in insertion order and does only what the service tests need: it records
// the inputs it was given and can be told to fail every call with err.
//
// A hand-written fake keeps the tests readable; the SQL itself is covered by
// the sqlite and postgres repository tests.

var _ repository.Store = (*fakeStore)(nil)

type fakeStore struct {
	mu sync.Mutex

	err    error // returned by every method when set
	nextID int64
	today  model.Date

	plants    map[int64]model.Plant
	journal   []model.JournalEntry
	reminders []model.Reminder
	posts     []model.CommunityPost

	patches   map[int64]model.PlantPatch
	updates   int
	waterings int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		today:   model.NewDate(2024, time.June, 15),
		plants:  make(map[int64]model.Plant),
		patches: make(map[int64]model.PlantPatch),
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

// --- plants ---

func (f *fakeStore) ListPlants(_ context.Context) ([]model.Plant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Plant
	for id := f.nextID; id > 0; id-- {
		if p, ok := f.plants[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) GetPlant(_ context.Context, id int64) (*model.Plant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.plants[id]
	if !ok {
		return nil, apperror.NotFound("plant", strconv.FormatInt(id, 10))
	}
	return &p, nil
}

func (f *fakeStore) CreatePlant(_ context.Context, in model.NewPlant) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	id := f.id()
	watered := f.today
	f.plants[id] = model.Plant{
		ID:                 id,
		Name:               in.Name,
		Species:            in.Species,
		Emoji:              *in.Emoji,
		WaterFrequencyDays: in.WaterFrequencyDays,
		Light:              in.Light,
		Humidity:           *in.Humidity,
		Health:             *in.Health,
		Notes:              in.Notes,
		Variety:            in.Variety,
		PurchaseDate:       in.PurchaseDate,
		Price:              in.Price,
		PhotoURL:           in.PhotoURL,
		LastWatered:        &watered,
		CreatedAt:          time.Now(),
	}
	return id, nil
}

func (f *fakeStore) UpdatePlant(_ context.Context, id int64, patch model.PlantPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.updates++
	f.patches[id] = patch
	return nil
}

func (f *fakeStore) WaterPlant(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.waterings++
	if p, ok := f.plants[id]; ok {
		watered := f.today
		p.LastWatered = &watered
		f.plants[id] = p
	}
	return nil
}

// --- journal ---

func (f *fakeStore) ListJournalEntries(_ context.Context) ([]model.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.journal, nil
}

func (f *fakeStore) CreateJournalEntry(_ context.Context, in model.NewJournalEntry) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	day := f.today
	if in.EntryDate != nil {
		day = *in.EntryDate
	}
	id := f.id()
	f.journal = append(f.journal, model.JournalEntry{
		ID: id, PlantID: *in.PlantID, EntryDate: day, Tag: in.Tag, Text: in.Text,
	})
	return id, nil
}

// --- reminders ---

func (f *fakeStore) ListActiveReminders(_ context.Context) ([]model.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Reminder
	for _, r := range f.reminders {
		if !r.IsDone {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateReminder(_ context.Context, in model.NewReminder) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	id := f.id()
	f.reminders = append(f.reminders, model.Reminder{
		ID: id, PlantID: *in.PlantID, Type: *in.Type, DueDate: in.DueDate,
	})
	return id, nil
}

func (f *fakeStore) CompleteReminder(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.reminders {
		if f.reminders[i].ID == id {
			f.reminders[i].IsDone = true
		}
	}
	return nil
}

// --- community ---

func (f *fakeStore) ListPosts(_ context.Context) ([]model.CommunityPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

func (f *fakeStore) CreatePost(_ context.Context, in model.NewPost) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	id := f.id()
	f.posts = append(f.posts, model.CommunityPost{
		ID: id, AuthorName: *in.AuthorName, Text: in.Text, Tags: in.Tags, CreatedAt: time.Now(),
	})
	return id, nil
}

func (f *fakeStore) LikePost(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts[i].Likes++
		}
	}
	return nil
}

func (f *fakeStore) Ping(context.Context) error { return f.err }
func (f *fakeStore) Close() error               { return nil }

// fixedClock returns a now func that always reports t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testLogger = logging.Discard()
