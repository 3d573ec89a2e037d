// Package store implements Blogly's data access: CRUD over users and posts.
//
// Every call is bound to the caller's context and runs either as a single
// statement or inside one transaction, so a failed call leaves no partial
// writes behind.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/beesaferoot/blogly/internal/models"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("record not found")

// Store wraps a gorm connection pool.
type Store struct {
	db              *gorm.DB
	defaultImageURL string
}

// New creates a Store. An empty defaultImageURL falls back to
// models.DefaultImageURL.
func New(db *gorm.DB, defaultImageURL string) *Store {
	if defaultImageURL == "" {
		defaultImageURL = models.DefaultImageURL
	}
	return &Store{db: db, defaultImageURL: defaultImageURL}
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ListUsers returns all users in insertion order.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser returns the user with its posts.
func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Posts", func(db *gorm.DB) *gorm.DB { return db.Order("posts.id") }).
		First(&user, id).Error
	if err != nil {
		return nil, notFound(err, "get user %d", id)
	}
	return &user, nil
}

// CreateUser inserts a new user.
func (s *Store) CreateUser(ctx context.Context, firstName, lastName, imageURL string) (*models.User, error) {
	user := models.User{
		FirstName: firstName,
		LastName:  lastName,
		ImageURL:  s.imageOrDefault(imageURL),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// UpdateUser overwrites all mutable fields of a user.
func (s *Store) UpdateUser(ctx context.Context, id uint, firstName, lastName, imageURL string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		user.FirstName = firstName
		user.LastName = lastName
		user.ImageURL = s.imageOrDefault(imageURL)
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, notFound(err, "update user %d", id)
	}
	return &user, nil
}

// DeleteUser removes a user together with all of its posts.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return notFound(err, "delete user %d", id)
	}
	return nil
}

// ListPostsForUser returns the posts owned by a user, oldest first.
func (s *Store) ListPostsForUser(ctx context.Context, userID uint) ([]models.Post, error) {
	posts := []models.Post{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts for user %d: %w", userID, err)
	}
	return posts, nil
}

// GetPost returns the post with its owner.
func (s *Store) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Preload("User").First(&post, id).Error; err != nil {
		return nil, notFound(err, "get post %d", id)
	}
	return &post, nil
}

// CreatePost inserts a post for an existing user.
func (s *Store) CreatePost(ctx context.Context, title, content string, userID uint) (*models.Post, error) {
	post := models.Post{Title: title, Content: content, UserID: userID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner models.User
		if err := tx.Select("id").First(&owner, userID).Error; err != nil {
			return err
		}
		return tx.Create(&post).Error
	})
	if err != nil {
		return nil, notFound(err, "create post for user %d", userID)
	}
	return &post, nil
}

// UpdatePost overwrites title and content. The owner never changes.
func (s *Store) UpdatePost(ctx context.Context, id uint, title, content string) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		return tx.Model(&post).Updates(map[string]any{"title": title, "content": content}).Error
	})
	if err != nil {
		return nil, notFound(err, "update post %d", id)
	}
	post.Title = title
	post.Content = content
	return &post, nil
}

// DeletePost removes a single post.
func (s *Store) DeletePost(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete post %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete post %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) imageOrDefault(imageURL string) string {
	if imageURL == "" {
		return s.defaultImageURL
	}
	return imageURL
}

// notFound wraps err, translating gorm's missing-row error into ErrNotFound.
func notFound(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
