package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sakif/plant-care/internal/apperror"
	"github.com/sakif/plant-care/internal/model"
	"github.com/sakif/plant-care/internal/repository"
)

// ReminderService handles plant care reminders.
type ReminderService struct {
	repo   repository.ReminderRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewReminderService(repo repository.ReminderRepository, logger *slog.Logger) *ReminderService {
	return &ReminderService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// ListActive returns reminders not yet done, earliest due date first and
// undated ones last, each labelled against today.
func (s *ReminderService) ListActive(ctx context.Context) ([]model.ReminderView, error) {
	reminders, err := s.repo.ListActiveReminders(ctx)
	if err != nil {
		s.logger.Error("failed to list reminders", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing reminders: %w", err)
	}

	day := today(s.now)
	views := make([]model.ReminderView, 0, len(reminders))
	for _, r := range reminders {
		views = append(views, model.ReminderView{
			Reminder:  r,
			Urgent:    Urgent(r.DueDate, day),
			TimeLabel: TimeLabel(r.DueDate, day),
		})
	}
	return views, nil
}

// Create stores a reminder. Unlike journal entries, a missing due_date is
// kept as NULL rather than defaulted to today.
func (s *ReminderService) Create(ctx context.Context, in model.NewReminder) (int64, error) {
	if in.PlantID == nil {
		return 0, apperror.ValidationFailed("plant_id", "plant_id is required")
	}
	if in.Type == nil || strings.TrimSpace(*in.Type) == "" {
		kind := model.DefaultReminderType
		in.Type = &kind
	}
	if in.DueDate != nil && in.DueDate.IsZero() {
		in.DueDate = nil
	}

	id, err := s.repo.CreateReminder(ctx, in)
	if err != nil {
		s.logger.Error("failed to create reminder",
			slog.Int64("plant_id", *in.PlantID),
			slog.String("error", err.Error()),
		)
		return 0, fmt.Errorf("creating reminder: %w", err)
	}

	s.logger.Info("reminder created",
		slog.Int64("id", id),
		slog.Int64("plant_id", *in.PlantID),
		slog.String("type", *in.Type),
	)
	return id, nil
}

// Complete marks a reminder done. It never goes back to not done.
func (s *ReminderService) Complete(ctx context.Context, id int64) error {
	if err := requireID("reminder_id", id); err != nil {
		return err
	}

	if err := s.repo.CompleteReminder(ctx, id); err != nil {
		s.logger.Error("failed to complete reminder",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("completing reminder: %w", err)
	}

	s.logger.Info("reminder completed", slog.Int64("id", id))
	return nil
}
