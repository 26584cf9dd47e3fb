package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sakif/plant-care/internal/model"
	"github.com/sakif/plant-care/internal/repository"
)

// CommunityService handles the shared feed.
type CommunityService struct {
	repo   repository.PostRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewCommunityService(repo repository.PostRepository, logger *slog.Logger) *CommunityService {
	return &CommunityService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// List returns the feed, newest first, with initials and time_ago.
func (s *CommunityService) List(ctx context.Context) ([]model.PostView, error) {
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		s.logger.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	now := s.now()
	views := make([]model.PostView, 0, len(posts))
	for _, p := range posts {
		if p.Tags == nil {
			p.Tags = []string{}
		}
		views = append(views, model.PostView{
			CommunityPost: p,
			Initials:      Initials(p.AuthorName),
			TimeAgo:       TimeAgo(p.CreatedAt, now),
		})
	}
	return views, nil
}

// Create stores a post. likes and comments always start at zero; the input
// has no way to set them.
func (s *CommunityService) Create(ctx context.Context, in model.NewPost) (int64, error) {
	if in.AuthorName == nil || strings.TrimSpace(*in.AuthorName) == "" {
		author := model.DefaultAuthorName
		in.AuthorName = &author
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}

	id, err := s.repo.CreatePost(ctx, in)
	if err != nil {
		s.logger.Error("failed to create post",
			slog.String("author", *in.AuthorName),
			slog.String("error", err.Error()),
		)
		return 0, fmt.Errorf("creating post: %w", err)
	}

	s.logger.Info("post created",
		slog.Int64("id", id),
		slog.String("author", *in.AuthorName),
		slog.Int("tags", len(in.Tags)),
	)
	return id, nil
}

// Like adds one like. Likes are anonymous, so repeated likes all count.
func (s *CommunityService) Like(ctx context.Context, id int64) error {
	if err := requireID("post_id", id); err != nil {
		return err
	}

	if err := s.repo.LikePost(ctx, id); err != nil {
		s.logger.Error("failed to like post",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("liking post: %w", err)
	}

	s.logger.Info("post liked", slog.Int64("id", id))
	return nil
}
