package models

import (
	"time"

	"github.com/google/uuid"
)

// Media types for uploaded post media.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Post is a content record stored in PostgreSQL. Every content field is
// optional on its own; creation enforces that at least one of
// {title, description} and at least one of {redirect_link, popunder_ad}
// is set. Posts are never updated after creation.
type Post struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string    `json:"title,omitempty"`
	Description  string    `json:"description,omitempty"`
	EmbedCode    string    `json:"embed_code,omitempty"`
	MediaURL     string    `json:"media_url,omitempty"`
	MediaType    string    `json:"media_type,omitempty"` // "image" or "video"
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	RedirectLink string    `json:"redirect_link,omitempty"`
	PopunderAd   string    `json:"popunder_ad,omitempty"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}

// CreateLinkRequest defines the request body for creating a post together
// with its public link. The title/description and redirect/popunder
// either-or rules are enforced by a struct-level validation, see the
// validators package.
type CreateLinkRequest struct {
	Title        string `json:"title" validate:"omitempty,max=200"`
	Description  string `json:"description" validate:"omitempty,max=5000"`
	EmbedCode    string `json:"embed_code"`
	MediaURL     string `json:"media_url" validate:"omitempty,url"`
	MediaType    string `json:"media_type" validate:"omitempty,oneof=image video"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
	RedirectLink string `json:"redirect_link" validate:"omitempty,url"`
	PopunderAd   string `json:"popunder_ad"`
}
