package model

import "time"

// PostModel mirrors the 'posts' table. Timestamp is assigned by the database default.
type PostModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(255);not null;default:Untitled"`
	Category    string    `gorm:"type:varchar(50);not null"`
	Content     string    `gorm:"type:text;not null"`
	Timestamp   time.Time `gorm:"type:timestamptz;not null;default:now()"`
	AuthorID    int64     `gorm:"not null;index"`
	IsAnonymous bool      `gorm:"not null;default:false"`

	Author   *UserModel     `gorm:"foreignKey:AuthorID"`
	Comments []CommentModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// PostSummaryRow is the projection scanned by the post list query.
type PostSummaryRow struct {
	ID           int64
	Title        string
	Category     string
	Content      string
	Timestamp    time.Time
	AuthorID     int64
	IsAnonymous  bool
	AuthorName   string
	CommentCount int64
}

// PostDetailRow is the projection scanned by the post detail query.
type PostDetailRow struct {
	ID          int64
	Title       string
	Category    string
	Content     string
	Timestamp   time.Time
	AuthorID    int64
	IsAnonymous bool
	AuthorName  string
}
