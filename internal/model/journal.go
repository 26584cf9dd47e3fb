package model

import "time"

// JournalEntry is an observation logged against a plant. Entries are never
// edited after they are written.
//
// PlantName and PlantEmoji are not columns of journal_entries; they come from
// the join with plants that every listing does.
type JournalEntry struct {
	ID         int64     `db:"id" json:"id"`
	PlantID    int64     `db:"plant_id" json:"plant_id"`
	PlantName  string    `db:"plant_name" json:"plant_name"`
	PlantEmoji string    `db:"plant_emoji" json:"plant_emoji"`
	EntryDate  Date      `db:"entry_date" json:"entry_date"`
	Tag        string    `db:"tag" json:"tag"`
	Text       string    `db:"text" json:"text"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// NewJournalEntry is the body of a create request. A nil EntryDate means
// "today" as the store sees it.
type NewJournalEntry struct {
	PlantID   *int64 `json:"plant_id"`
	EntryDate *Date  `json:"entry_date"`
	Tag       string `json:"tag"`
	Text      string `json:"text"`
}
