// Package models holds the gorm-mapped entities of Blogly.
package models

import "time"

// DefaultImageURL is stored for users created or edited without an image.
const DefaultImageURL = "https://www.freeiconspng.com/uploads/icon-user-blue-symbol-people-person-generic--public-domain--21.png"

// User represents a blog author
type User struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"type:text;not null"`
	LastName  string `gorm:"type:text;not null"`
	ImageURL  string `gorm:"type:text"`
	Posts     []Post `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

// FullName returns "first last".
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Post represents a blog post owned by a single user
type Post struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"type:text;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UserID    uint      `gorm:"not null;index"`
	User      *User     `gorm:"foreignKey:UserID"`
}

// FriendlyDate formats CreatedAt for display.
func (p Post) FriendlyDate() string {
	return p.CreatedAt.Format("Mon Jan 2 2006, 3:04 PM")
}
