package model

import "time"

// DefaultReminderType is used when a reminder is created without a type.
const DefaultReminderType = "watering"

// Reminder is a due-date task for a plant. IsDone only ever goes from false
// to true.
type Reminder struct {
	ID         int64     `db:"id" json:"id"`
	PlantID    int64     `db:"plant_id" json:"plant_id"`
	PlantName  string    `db:"plant_name" json:"plant_name"`
	PlantEmoji string    `db:"plant_emoji" json:"plant_emoji"`
	Type       string    `db:"type" json:"type"`
	DueDate    *Date     `db:"due_date" json:"due_date"`
	IsDone     bool      `db:"is_done" json:"is_done"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// ReminderView adds the fields computed against "today".
type ReminderView struct {
	Reminder
	Urgent    bool   `json:"urgent"`
	TimeLabel string `json:"time_label"`
}

// NewReminder is the body of a create request. Unlike journal entries, a
// missing due date stays NULL.
type NewReminder struct {
	PlantID *int64  `json:"plant_id"`
	Type    *string `json:"type"`
	DueDate *Date   `json:"due_date"`
}
