// Package entity contains the core business objects of the project.
package entity

import "time"

// AnonymousCommentAuthor is the author name shown for every comment.
const AnonymousCommentAuthor = "Anonymous Friend"

// Comment is a reply attached to an existing post.
type Comment struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"post_id"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	AuthorID   int64     `json:"-"`
	AuthorName string    `json:"author_name"`
}
