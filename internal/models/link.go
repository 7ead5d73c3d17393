package models

import (
	"time"

	"github.com/google/uuid"
)

// Link is the short public alias for exactly one Post. The short code is a
// 6-character lowercase base-36 string with a store-side uniqueness
// constraint. Deleting the owning Post cascade-deletes the Link.
type Link struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PostID    uuid.UUID `json:"post_id" gorm:"type:uuid;index"`
	Post      Post      `json:"post,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	LinkID    string    `json:"link_id" gorm:"uniqueIndex;size:6"`
	Title     string    `json:"title,omitempty"` // display snapshot of the post title/description
	CreatedAt time.Time `json:"created_at"`
}

// LinkResponse is what the admin API returns for a generated link.
type LinkResponse struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	LinkID    string    `json:"link_id"`
	Title     string    `json:"title,omitempty"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
