package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/plant-care/internal/apperror"
	"github.com/sakif/plant-care/internal/model"
	"github.com/sakif/plant-care/internal/repository"
)

// JournalService handles the append-only plant journal.
type JournalService struct {
	repo   repository.JournalRepository
	logger *slog.Logger
}

func NewJournalService(repo repository.JournalRepository, logger *slog.Logger) *JournalService {
	return &JournalService{
		repo:   repo,
		logger: logger,
	}
}

// List returns all entries, latest entry_date first.
func (s *JournalService) List(ctx context.Context) ([]model.JournalEntry, error) {
	entries, err := s.repo.ListJournalEntries(ctx)
	if err != nil {
		s.logger.Error("failed to list journal entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	if entries == nil {
		entries = []model.JournalEntry{}
	}
	return entries, nil
}

// Create stores a new entry. plant_id is required; a missing or empty
// entry_date is left for the store to default to its current date.
func (s *JournalService) Create(ctx context.Context, in model.NewJournalEntry) (int64, error) {
	if in.PlantID == nil {
		return 0, apperror.ValidationFailed("plant_id", "plant_id is required")
	}
	if in.EntryDate != nil && in.EntryDate.IsZero() {
		in.EntryDate = nil
	}

	id, err := s.repo.CreateJournalEntry(ctx, in)
	if err != nil {
		// A plant_id with no plant lands here as a foreign key violation.
		s.logger.Error("failed to create journal entry",
			slog.Int64("plant_id", *in.PlantID),
			slog.String("error", err.Error()),
		)
		return 0, fmt.Errorf("creating journal entry: %w", err)
	}

	s.logger.Info("journal entry created",
		slog.Int64("id", id),
		slog.Int64("plant_id", *in.PlantID),
		slog.String("tag", in.Tag),
	)
	return id, nil
}
