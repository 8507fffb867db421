// Package model holds the GORM row structs of the forum schema.
package model

// UserModel is a row of users. Password holds a PHC or modular-crypt hash;
// cmd/migrate widens the column when a hash would not fit.
type UserModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(100);not null"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(255)"`
}

func (UserModel) TableName() string {
	return "users"
}
