package model

import (
	"time"

	"github.com/sakif/plant-care/internal/apperror"
)

// Plant is a row of the plants table.
//
// NULLABLE COLUMNS ARE POINTERS:
// variety, purchase_date, price, photo_url, last_watered and
// water_frequency_days may be NULL. A nil pointer scans from NULL and
// marshals to JSON null, so the wire format matches the table exactly.
type Plant struct {
	ID                 int64     `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	Species            string    `db:"species" json:"species"`
	Emoji              string    `db:"emoji" json:"emoji"`
	WaterFrequencyDays *int      `db:"water_frequency_days" json:"water_frequency_days"`
	Light              string    `db:"light" json:"light"`
	Humidity           int       `db:"humidity" json:"humidity"`
	Health             int       `db:"health" json:"health"`
	Notes              string    `db:"notes" json:"notes"`
	Variety            *string   `db:"variety" json:"variety"`
	PurchaseDate       *Date     `db:"purchase_date" json:"purchase_date"`
	Price              *float64  `db:"price" json:"price"`
	PhotoURL           *string   `db:"photo_url" json:"photo_url"`
	LastWatered        *Date     `db:"last_watered" json:"last_watered"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// NextWater is the day the plant is next due for watering: last_watered plus
// water_frequency_days calendar days. Nil when either input is missing.
func (p Plant) NextWater() *Date {
	if p.LastWatered == nil || p.WaterFrequencyDays == nil {
		return nil
	}
	next := p.LastWatered.AddDays(*p.WaterFrequencyDays)
	return &next
}

// PlantView is a Plant as the API returns it.
// Embedding Plant flattens its fields into the same JSON object.
type PlantView struct {
	Plant
	NextWater *Date `json:"next_water"`
}

// NewPlantView derives the display fields of p.
func NewPlantView(p Plant) PlantView {
	return PlantView{Plant: p, NextWater: p.NextWater()}
}

// Plant defaults applied on create when the client leaves a field out.
const (
	DefaultPlantEmoji         = "🌱"
	DefaultWaterFrequencyDays = 7
	DefaultHumidity           = 50
	DefaultHealth             = 100
)

// NewPlant is the body of a create request. Pointer fields distinguish
// "absent" from a zero value so the defaults above only fill real gaps.
type NewPlant struct {
	Name               string   `json:"name"`
	Species            string   `json:"species"`
	Emoji              *string  `json:"emoji"`
	WaterFrequencyDays *int     `json:"water_frequency_days"`
	Light              string   `json:"light"`
	Humidity           *int     `json:"humidity"`
	Health             *int     `json:"health"`
	Notes              string   `json:"notes"`
	Variety            *string  `json:"variety"`
	PurchaseDate       *Date    `json:"purchase_date"`
	Price              *float64 `json:"price"`
	PhotoURL           *string  `json:"photo_url"`
}

// Normalize fills defaults and turns falsy optional values (empty string,
// zero price) into nil so they are stored as NULL.
func (n NewPlant) Normalize() NewPlant {
	if n.Emoji == nil {
		e := DefaultPlantEmoji
		n.Emoji = &e
	}
	if n.WaterFrequencyDays == nil {
		f := DefaultWaterFrequencyDays
		n.WaterFrequencyDays = &f
	}
	if n.Humidity == nil {
		h := DefaultHumidity
		n.Humidity = &h
	}
	if n.Health == nil {
		h := DefaultHealth
		n.Health = &h
	}
	n.Variety = nonEmpty(n.Variety)
	n.PhotoURL = nonEmpty(n.PhotoURL)
	if n.Price != nil && *n.Price == 0 {
		n.Price = nil
	}
	if n.PurchaseDate != nil && n.PurchaseDate.IsZero() {
		n.PurchaseDate = nil
	}
	return n
}

// Validate rejects values the table would accept but that make no sense.
func (n NewPlant) Validate() error {
	if n.WaterFrequencyDays != nil && *n.WaterFrequencyDays < 0 {
		return apperror.ValidationFailed("water_frequency_days", "water_frequency_days must be zero or positive")
	}
	return nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// PlantPatch is a partial update. Only the attributes listed here can be
// changed through the API; any other key in the request body is ignored.
type PlantPatch struct {
	Name               Field[string]  `json:"name"`
	Species            Field[string]  `json:"species"`
	Emoji              Field[string]  `json:"emoji"`
	WaterFrequencyDays Field[int]     `json:"water_frequency_days"`
	Light              Field[string]  `json:"light"`
	Humidity           Field[int]     `json:"humidity"`
	Health             Field[int]     `json:"health"`
	Notes              Field[string]  `json:"notes"`
	Variety            Field[string]  `json:"variety"`
	PurchaseDate       Field[Date]    `json:"purchase_date"`
	Price              Field[float64] `json:"price"`
	PhotoURL           Field[string]  `json:"photo_url"`
}

// Empty reports whether the patch would change nothing.
func (p PlantPatch) Empty() bool {
	return !(p.Name.Set || p.Species.Set || p.Emoji.Set || p.WaterFrequencyDays.Set ||
		p.Light.Set || p.Humidity.Set || p.Health.Set || p.Notes.Set ||
		p.Variety.Set || p.PurchaseDate.Set || p.Price.Set || p.PhotoURL.Set)
}

// Validate rejects null on NOT NULL columns and out-of-range values.
// water_frequency_days is nullable in the table, so null clears it.
func (p PlantPatch) Validate() error {
	notNull := []struct {
		name string
		null bool
	}{
		{"name", p.Name.Null},
		{"species", p.Species.Null},
		{"emoji", p.Emoji.Null},
		{"light", p.Light.Null},
		{"humidity", p.Humidity.Null},
		{"health", p.Health.Null},
		{"notes", p.Notes.Null},
	}
	for _, f := range notNull {
		if f.null {
			return apperror.ValidationFailed(f.name, f.name+" cannot be null")
		}
	}
	if p.WaterFrequencyDays.Set && !p.WaterFrequencyDays.Null && p.WaterFrequencyDays.Value < 0 {
		return apperror.ValidationFailed("water_frequency_days", "water_frequency_days must be zero or positive")
	}
	return nil
}
