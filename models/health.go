package models

import (
	"time"

	"gorm.io/gorm"
)

type HealthPostStatus string

const (
	PostPublished HealthPostStatus = "published"
	PostDraft     HealthPostStatus = "draft"
	PostScheduled HealthPostStatus = "scheduled"
)

type HealthPost struct {
	gorm.Model
	Title     string              `json:"title"`
	Content   string              `json:"content"`
	ImageURL  *string             `json:"image_url"`
	Likes     int                 `json:"likes" gorm:"default:0"`
	Status    HealthPostStatus    `json:"status" gorm:"default:draft"`
	PublishAt *time.Time          `json:"publish_at"`
	Comments  []HealthPostComment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

func (p *HealthPost) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = PostDraft
	}
	return nil
}

type HealthPostComment struct {
	gorm.Model
	PostID  uint   `json:"post_id"`
	Content string `json:"content"`
}

// UserFeedback is free-form feedback left from any page, kept out of the
// search/response flow entirely.
type UserFeedback struct {
	gorm.Model
	Message string `json:"message"`
	Contact string `json:"contact,omitempty"`
}
