package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/plant-care/internal/model"
	"github.com/sakif/plant-care/internal/repository"
)

// PlantService handles business logic for plants.
type PlantService struct {
	repo   repository.PlantRepository
	logger *slog.Logger
}

// NewPlantService creates a new PlantService.
func NewPlantService(repo repository.PlantRepository, logger *slog.Logger) *PlantService {
	return &PlantService{
		repo:   repo,
		logger: logger,
	}
}

// List returns every plant, newest first, with next_water filled in.
func (s *PlantService) List(ctx context.Context) ([]model.PlantView, error) {
	plants, err := s.repo.ListPlants(ctx)
	if err != nil {
		s.logger.Error("failed to list plants", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing plants: %w", err)
	}

	// make, not var: an empty result must encode as [] rather than null.
	views := make([]model.PlantView, 0, len(plants))
	for _, p := range plants {
		views = append(views, model.NewPlantView(p))
	}
	return views, nil
}

// Get returns one plant. Returns apperror.ErrNotFound if it doesn't exist.
func (s *PlantService) Get(ctx context.Context, id int64) (*model.PlantView, error) {
	p, err := s.repo.GetPlant(ctx, id)
	if err != nil {
		// NotFound is already an *AppError; anything else is a store failure.
		return nil, err
	}
	view := model.NewPlantView(*p)
	return &view, nil
}

// Create validates in, applies the plant defaults and stores it.
// last_watered is stamped by the store with its own current date.
func (s *PlantService) Create(ctx context.Context, in model.NewPlant) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	in = in.Normalize()

	id, err := s.repo.CreatePlant(ctx, in)
	if err != nil {
		s.logger.Error("failed to create plant",
			slog.String("name", in.Name),
			slog.String("error", err.Error()),
		)
		return 0, fmt.Errorf("creating plant: %w", err)
	}

	s.logger.Info("plant created",
		slog.Int64("id", id),
		slog.String("name", in.Name),
	)
	return id, nil
}

// Update applies the fields present in patch. A patch with no recognised
// field succeeds without touching the store.
func (s *PlantService) Update(ctx context.Context, id int64, patch model.PlantPatch) error {
	if err := requireID("id", id); err != nil {
		return err
	}
	if err := patch.Validate(); err != nil {
		return err
	}
	if patch.Empty() {
		s.logger.Debug("plant update with no recognised fields", slog.Int64("id", id))
		return nil
	}

	if err := s.repo.UpdatePlant(ctx, id, patch); err != nil {
		s.logger.Error("failed to update plant",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("updating plant: %w", err)
	}

	s.logger.Info("plant updated", slog.Int64("id", id))
	return nil
}

// Water sets last_watered to today. Watering twice on the same day is the
// same as watering once.
func (s *PlantService) Water(ctx context.Context, id int64) error {
	if err := requireID("plant_id", id); err != nil {
		return err
	}

	if err := s.repo.WaterPlant(ctx, id); err != nil {
		s.logger.Error("failed to water plant",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("watering plant: %w", err)
	}

	s.logger.Info("plant watered", slog.Int64("id", id))
	return nil
}
