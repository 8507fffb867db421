// Package entity contains the core business objects of the project.
package entity

import "time"

const (
	// DefaultPostTitle is used when a post is created without a title.
	DefaultPostTitle = "Untitled"
	// AnonymousPostAuthor replaces the author name of anonymous posts.
	AnonymousPostAuthor = "Anonymous"
)

// Category is the topic a post is filed under.
type Category string

const (
	CategoryMentalHealth  Category = "Mental Health"
	CategoryCareer        Category = "Career"
	CategoryAcademics     Category = "Academics"
	CategoryRelationships Category = "Relationships"
	CategoryGeneral       Category = "General"
)

// Categories lists the topics offered to clients.
var Categories = []Category{
	CategoryMentalHealth,
	CategoryCareer,
	CategoryAcademics,
	CategoryRelationships,
	CategoryGeneral,
}

// IsKnown reports whether c is one of the offered topics. Unknown categories are still accepted.
func (c Category) IsKnown() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// Post is a forum entry written by a user.
type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Category    Category  `json:"category"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"` // Assigned by the store at insert time.
	AuthorID    int64     `json:"author_id"`
	IsAnonymous bool      `json:"is_anonymous"`
}

// PostSummary is a post as shown in the list view, joined with its author and comment count.
type PostSummary struct {
	Post
	AuthorName   string `json:"author_name"`
	CommentCount int64  `json:"comment_count"`
}

// PostDetail is a post joined with its author and its comments, oldest first.
type PostDetail struct {
	Post
	AuthorName string     `json:"author_name"`
	Comments   []*Comment `json:"comments"`
}

// DisplayAuthor returns the name to show for a post written by authorName.
func (p *Post) DisplayAuthor(authorName string) string {
	if p.IsAnonymous {
		return AnonymousPostAuthor
	}

	return authorName
}
