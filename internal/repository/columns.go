package repository

import (
	"github.com/sakif/plant-care/internal/model"
)

// Column is one selected column. Name matches a `db` tag on the record the
// row is scanned into; Expr is the SQL that produces it when that is not
// simply Name.
type Column struct {
	Name string
	Expr string
}

// Columns is an ordered select list.
type Columns []Column

// Select renders the list for squirrel's Select/Columns.
func (cs Columns) Select() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		if c.Expr == "" || c.Expr == c.Name {
			out[i] = c.Name
			continue
		}
		out[i] = c.Expr + " AS " + c.Name
	}
	return out
}

// Names returns the result column names in order.
func (cs Columns) Names() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

var PlantColumns = Columns{
	{Name: "id"},
	{Name: "name"},
	{Name: "species"},
	{Name: "emoji"},
	{Name: "water_frequency_days"},
	{Name: "light"},
	{Name: "humidity"},
	{Name: "health"},
	{Name: "notes"},
	{Name: "variety"},
	{Name: "purchase_date"},
	{Name: "price"},
	{Name: "photo_url"},
	{Name: "last_watered"},
	{Name: "created_at"},
}

// JournalColumns selects from journal_entries j JOIN plants p.
var JournalColumns = Columns{
	{Name: "id", Expr: "j.id"},
	{Name: "plant_id", Expr: "p.id"},
	{Name: "plant_name", Expr: "p.name"},
	{Name: "plant_emoji", Expr: "p.emoji"},
	{Name: "entry_date", Expr: "j.entry_date"},
	{Name: "tag", Expr: "j.tag"},
	{Name: "text", Expr: "j.text"},
	{Name: "created_at", Expr: "j.created_at"},
}

// ReminderColumns selects from reminders r JOIN plants p.
var ReminderColumns = Columns{
	{Name: "id", Expr: "r.id"},
	{Name: "plant_id", Expr: "p.id"},
	{Name: "plant_name", Expr: "p.name"},
	{Name: "plant_emoji", Expr: "p.emoji"},
	{Name: "type", Expr: "r.type"},
	{Name: "due_date", Expr: "r.due_date"},
	{Name: "is_done", Expr: "r.is_done"},
	{Name: "created_at", Expr: "r.created_at"},
}

var PostColumns = Columns{
	{Name: "id"},
	{Name: "author_name"},
	{Name: "text"},
	{Name: "tags"},
	{Name: "likes"},
	{Name: "comments"},
	{Name: "created_at"},
}

// DateArg binds a nullable date as "YYYY-MM-DD" text. Both drivers accept
// text for a DATE parameter, and SQLite compares dates as text, so this keeps
// CURRENT_DATE comparisons and ordering correct there too. The zero Date
// binds as NULL.
func DateArg(d *model.Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return d.String()
}

// Assignment is one column = value pair of an UPDATE.
type Assignment struct {
	Column string
	Value  any
}

// PlantAssignments turns a patch into SET pairs, in a fixed column order.
// This is the allow-list: no other column of plants can be reached through
// a partial update.
func PlantAssignments(p model.PlantPatch) []Assignment {
	var out []Assignment
	add := func(set bool, column string, value any) {
		if set {
			out = append(out, Assignment{Column: column, Value: value})
		}
	}

	add(p.Name.Set, "name", p.Name.Value)
	add(p.Species.Set, "species", p.Species.Value)
	add(p.Emoji.Set, "emoji", p.Emoji.Value)
	add(p.WaterFrequencyDays.Set, "water_frequency_days", p.WaterFrequencyDays.Ptr())
	add(p.Light.Set, "light", p.Light.Value)
	add(p.Humidity.Set, "humidity", p.Humidity.Value)
	add(p.Health.Set, "health", p.Health.Value)
	add(p.Notes.Set, "notes", p.Notes.Value)
	add(p.Variety.Set, "variety", p.Variety.Ptr())
	add(p.PurchaseDate.Set, "purchase_date", DateArg(p.PurchaseDate.Ptr()))
	add(p.Price.Set, "price", p.Price.Ptr())
	add(p.PhotoURL.Set, "photo_url", p.PhotoURL.Ptr())

	return out
}
