package postgres

import (
	"context"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/sakif/plant-care/internal/apperror"
	"github.com/sakif/plant-care/internal/model"
	"github.com/sakif/plant-care/internal/repository"
)

func (db *DB) ListPlants(ctx context.Context) ([]model.Plant, error) {
	q := db.sb.Select(repository.PlantColumns.Select()...).
		From("plants").
		OrderBy("created_at DESC", "id DESC")

	plants := []model.Plant{}
	if err := db.selectInto(ctx, &plants, q); err != nil {
		return nil, fmt.Errorf("postgres: listing plants: %w", err)
	}
	return plants, nil
}

func (db *DB) GetPlant(ctx context.Context, id int64) (*model.Plant, error) {
	query, args, err := db.sb.Select(repository.PlantColumns.Select()...).
		From("plants").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: building plant query: %w", err)
	}

	var plant model.Plant
	if err := pgxscan.Get(ctx, db.pool, &plant, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NotFound("plant", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("postgres: getting plant %d: %w", id, err)
	}
	return &plant, nil
}

func (db *DB) CreatePlant(ctx context.Context, p model.NewPlant) (int64, error) {
	q := db.sb.Insert("plants").
		Columns("name", "species", "emoji", "water_frequency_days", "light", "humidity", "health",
			"notes", "variety", "purchase_date", "price", "photo_url", "last_watered").
		Values(p.Name, p.Species, p.Emoji, p.WaterFrequencyDays, p.Light, p.Humidity, p.Health,
			p.Notes, p.Variety, repository.DateArg(p.PurchaseDate), p.Price, p.PhotoURL, sq.Expr("CURRENT_DATE"))

	id, err := db.insert(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("postgres: creating plant: %w", err)
	}
	return id, nil
}

func (db *DB) UpdatePlant(ctx context.Context, id int64, patch model.PlantPatch) error {
	assignments := repository.PlantAssignments(patch)
	if len(assignments) == 0 {
		return nil
	}

	q := db.sb.Update("plants").Where(sq.Eq{"id": id})
	for _, a := range assignments {
		q = q.Set(a.Column, a.Value)
	}

	if err := db.exec(ctx, q); err != nil {
		return fmt.Errorf("postgres: updating plant %d: %w", id, err)
	}
	return nil
}

func (db *DB) WaterPlant(ctx context.Context, id int64) error {
	q := db.sb.Update("plants").
		Set("last_watered", sq.Expr("CURRENT_DATE")).
		Where(sq.Eq{"id": id})

	if err := db.exec(ctx, q); err != nil {
		return fmt.Errorf("postgres: watering plant %d: %w", id, err)
	}
	return nil
}
