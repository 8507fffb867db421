package model

import "time"

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PostID    int64     `gorm:"not null;index"`
	Content   string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"type:timestamptz;not null;default:now()"`
	AuthorID  int64     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
