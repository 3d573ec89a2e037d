package migration

import (
	"time"

	"gorm.io/gorm"
)

// Table snapshots as of each migration. They are frozen here so that later
// changes to internal/models never rewrite history.

type usersV1 struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"type:text;not null"`
	LastName  string `gorm:"type:text;not null"`
	ImageURL  string `gorm:"type:text"`
}

func (usersV1) TableName() string { return "users" }

type postsV1 struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"type:text;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UserID    uint      `gorm:"not null;index"`
	User      usersV1   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (postsV1) TableName() string { return "posts" }

// Blogly returns the application's schema migrations in version order.
func Blogly() []*Migration {
	return []*Migration{
		{
			Version: "20240101000001",
			Name:    "create_users",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&usersV1{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&usersV1{})
			},
		},
		{
			Version: "20240101000002",
			Name:    "create_posts",
			Up: func(db *gorm.DB) error {
				return db.Migrator().CreateTable(&postsV1{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&postsV1{})
			},
		},
	}
}
