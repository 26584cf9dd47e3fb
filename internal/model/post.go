package model

import "time"

// DefaultAuthorName is shown for posts created without an author.
const DefaultAuthorName = "Anonymous"

// CommunityPost is a message on the shared feed. Likes and Comments are
// counters that only grow; clients cannot set either one directly.
type CommunityPost struct {
	ID         int64     `db:"id" json:"id"`
	AuthorName string    `db:"author_name" json:"author_name"`
	Text       string    `db:"text" json:"text"`
	Tags       []string  `db:"tags" json:"tags"`
	Likes      int       `db:"likes" json:"likes"`
	Comments   int       `db:"comments" json:"comments"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// PostView adds the display fields of the feed.
type PostView struct {
	CommunityPost
	Initials string `json:"initials"`
	TimeAgo  string `json:"time_ago"`
}

// NewPost is the body of a create request.
type NewPost struct {
	AuthorName *string  `json:"author_name"`
	Text       string   `json:"text"`
	Tags       []string `json:"tags"`
}
