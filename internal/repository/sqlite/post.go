package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sakif/plant-care/internal/model"
	"github.com/sakif/plant-care/internal/repository"
)

// postRow is community_posts as SQLite stores it: tags is a JSON array in a
// TEXT column.
type postRow struct {
	ID         int64     `db:"id"`
	AuthorName string    `db:"author_name"`
	Text       string    `db:"text"`
	Tags       string    `db:"tags"`
	Likes      int       `db:"likes"`
	Comments   int       `db:"comments"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r postRow) toModel() (model.CommunityPost, error) {
	tags := []string{}
	if r.Tags != "" {
		if err := json.Unmarshal([]byte(r.Tags), &tags); err != nil {
			return model.CommunityPost{}, fmt.Errorf("decoding tags of post %d: %w", r.ID, err)
		}
	}
	return model.CommunityPost{
		ID:         r.ID,
		AuthorName: r.AuthorName,
		Text:       r.Text,
		Tags:       tags,
		Likes:      r.Likes,
		Comments:   r.Comments,
		CreatedAt:  r.CreatedAt,
	}, nil
}

func (db *DB) ListPosts(ctx context.Context) ([]model.CommunityPost, error) {
	q := db.sb.Select(repository.PostColumns.Select()...).
		From("community_posts").
		OrderBy("created_at DESC", "id DESC")

	var rows []postRow
	if err := db.selectInto(ctx, &rows, q); err != nil {
		return nil, fmt.Errorf("sqlite: listing posts: %w", err)
	}

	posts := make([]model.CommunityPost, 0, len(rows))
	for _, r := range rows {
		p, err := r.toModel()
		if err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (db *DB) CreatePost(ctx context.Context, p model.NewPost) (int64, error) {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return 0, fmt.Errorf("sqlite: encoding tags: %w", err)
	}

	q := db.sb.Insert("community_posts").
		Columns("author_name", "text", "tags").
		Values(p.AuthorName, p.Text, string(encoded))

	id, err := db.insert(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("sqlite: creating post: %w", err)
	}
	return id, nil
}

func (db *DB) LikePost(ctx context.Context, id int64) error {
	q := db.sb.Update("community_posts").
		Set("likes", sq.Expr("likes + 1")).
		Where(sq.Eq{"id": id})

	if err := db.exec(ctx, q); err != nil {
		return fmt.Errorf("sqlite: liking post %d: %w", id, err)
	}
	return nil
}
