package models

import (
	"time"
)

type Post struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Title      string     `gorm:"not null" json:"title"`
	Details    string     `gorm:"not null" json:"details"`
	UserID     uint       `gorm:"index;not null" json:"user_id"`
	User       *User      `json:"user,omitempty"`
	Categories []Category `gorm:"many2many:post_categories" json:"categories,omitempty"`
	Comments   []Comment  `json:"comments,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type PostRequest struct {
	Title       string `json:"title" validate:"required"`
	Details     string `json:"details" validate:"required"`
	CategoryIDs []uint `json:"categoryIds" validate:"omitempty,dive,min=1"`
}

// PostListFilter narrows a post listing. Zero values mean no filtering.
type PostListFilter struct {
	UserID     uint
	CategoryID uint
}
