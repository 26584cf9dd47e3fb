package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/sakif/plant-care/internal/model"
	"github.com/sakif/plant-care/internal/repository"
)

func (db *DB) ListPosts(ctx context.Context) ([]model.CommunityPost, error) {
	q := db.sb.Select(repository.PostColumns.Select()...).
		From("community_posts").
		OrderBy("created_at DESC", "id DESC")

	posts := []model.CommunityPost{}
	if err := db.selectInto(ctx, &posts, q); err != nil {
		return nil, fmt.Errorf("postgres: listing posts: %w", err)
	}
	for i := range posts {
		if posts[i].Tags == nil {
			posts[i].Tags = []string{}
		}
	}
	return posts, nil
}

func (db *DB) CreatePost(ctx context.Context, p model.NewPost) (int64, error) {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	q := db.sb.Insert("community_posts").
		Columns("author_name", "text", "tags").
		Values(p.AuthorName, p.Text, tags)

	id, err := db.insert(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("postgres: creating post: %w", err)
	}
	return id, nil
}

func (db *DB) LikePost(ctx context.Context, id int64) error {
	q := db.sb.Update("community_posts").
		Set("likes", sq.Expr("likes + 1")).
		Where(sq.Eq{"id": id})

	if err := db.exec(ctx, q); err != nil {
		return fmt.Errorf("postgres: liking post %d: %w", id, err)
	}
	return nil
}
