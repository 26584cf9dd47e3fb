// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → validates, applies defaults, derives display fields
//	Repository (Data layer)  → reads/writes the store
//
// There are five services and none of them calls another:
//
//	PlantService     → plants, next_water
//	JournalService   → journal entries joined to their plant
//	ReminderService  → active reminders, urgent / time_label
//	CommunityService → feed posts, initials / time_ago, likes
//	PhotoService     → base64 image → object store → CDN URL
//
// DEPENDENCY INJECTION:
// Every service takes the narrow repository interface it needs
// (repository.PlantRepository, not *postgres.DB), so the same code runs against
// PostgreSQL in production, SQLite in development and a hand-written fake in
// the tests of this package.
//
// "TODAY":
// Services that derive labels from the current date hold a now func. It is
// time.Now in production and a fixed clock in tests. Calendar days are taken
// in UTC, which is also the zone the store's CURRENT_DATE runs in.
package service

import (
	"time"

	"github.com/sakif/plant-care/internal/apperror"
	"github.com/sakif/plant-care/internal/model"
)

// today returns the current calendar day in UTC.
func today(now func() time.Time) model.Date {
	return model.DateOf(now().UTC())
}

// requireID rejects a missing target id. A positive id that matches no row is
// not an error: the write simply affects nothing.
func requireID(field string, id int64) error {
	if id <= 0 {
		return apperror.ValidationFailed(field, field+" is required")
	}
	return nil
}
