// Package render composes matcher, thumbnail and embed-normalizer output
// into the public post page.
package render

import (
	"encoding/json"
	"html/template"
	"strings"
	"time"

	"github.com/rownak648/storyline/internal/models"
	"github.com/rownak648/storyline/internal/videolink"
)

// SiteName labels the page header and social metadata.
const SiteName = "Storyline"

// Fallback copy when a post has only one of title/description.
const (
	fallbackTitle       = "Amazing Social Media Content"
	fallbackDescription = "Check out this amazing content! Don't miss this viral post."
)

// Media modes for the post page, first applicable wins. See BuildPage.
const (
	ModeYouTube = "youtube" // dedicated YouTube iframe from the embed snippet
	ModeEmbed   = "embed"   // normalized third-party embed markup
	ModePlayer  = "player"  // platform player iframe for a direct media URL
	ModeVideo   = "video"   // plain video element
	ModeImage   = "image"   // plain image element
	ModeEmpty   = "empty"   // empty-state placeholder
)

// Page is everything the post template needs for one page view.
type Page struct {
	Title        string
	Description  string
	Thumbnail    string
	CanonicalURL string
	SiteName     string
	PublishedAt  string

	Mode        string
	PlayerURL   string        // ModeYouTube and ModePlayer
	PlayerAllow string        // iframe allow attribute for PlayerURL
	PlayerTitle string        // accessible iframe title for PlayerURL
	EmbedHTML   template.HTML // ModeEmbed: operator-supplied markup, rendered as-is
	MediaURL    string        // ModeVideo and ModeImage

	RedirectLink   string
	PopunderAd     string
	StructuredData template.JS
}

// BuildPage assembles the page model for a post reached via shortCode.
// Media priority: a YouTube reference in the embed snippet renders a
// dedicated YouTube iframe; any other embed snippet goes through the
// normalizer; otherwise uploaded media renders per its kind, with direct
// video URLs upgraded to a platform player when one matches; with nothing
// set the page shows an empty state.
func BuildPage(post *models.Post, shortCode, siteURL string) *Page {
	title := strings.TrimSpace(post.Title)
	description := strings.TrimSpace(post.Description)
	if title == "" {
		title = description
	}
	if description == "" {
		description = strings.TrimSpace(post.Title)
	}
	if title == "" {
		title = fallbackTitle
	}
	if description == "" {
		description = fallbackDescription
	}

	thumbnail := videolink.ResolveThumbnail(post)
	if strings.HasPrefix(thumbnail, "/") {
		thumbnail = siteURL + thumbnail
	}

	page := &Page{
		Title:        title,
		Description:  description,
		Thumbnail:    thumbnail,
		CanonicalURL: siteURL + "/post/" + shortCode,
		SiteName:     SiteName,
		PublishedAt:  post.CreatedAt.Format(time.RFC3339),
		Mode:         ModeEmpty,
		RedirectLink: post.RedirectLink,
		PopunderAd:   post.PopunderAd,
	}

	switch {
	case post.EmbedCode != "":
		if videoID, ok := videolink.MatchEmbedSnippet(post.EmbedCode); ok {
			ref := videolink.VideoRef{Platform: videolink.PlatformYouTube, VideoID: videoID}
			page.Mode = ModeYouTube
			page.PlayerURL, _ = videolink.PlayerURL(ref)
			page.PlayerAllow, page.PlayerTitle = playerAttrs(ref.Platform)
		} else {
			page.Mode = ModeEmbed
			page.EmbedHTML = template.HTML(videolink.NormalizeEmbed(post.EmbedCode))
		}
	case post.MediaURL != "":
		if post.MediaType == models.MediaTypeVideo {
			if ref, ok := videolink.Match(post.MediaURL); ok {
				if playerURL, ok := videolink.PlayerURL(ref); ok {
					page.Mode = ModePlayer
					page.PlayerURL = playerURL
					page.PlayerAllow, page.PlayerTitle = playerAttrs(ref.Platform)
					break
				}
			}
			page.Mode = ModeVideo
			page.MediaURL = post.MediaURL
		} else {
			page.Mode = ModeImage
			page.MediaURL = post.MediaURL
		}
	}

	page.StructuredData = structuredData(page, siteURL)
	return page
}

func playerAttrs(platform videolink.Platform) (allow, title string) {
	switch platform {
	case videolink.PlatformVimeo:
		return "autoplay; fullscreen; picture-in-picture", "Vimeo video"
	case videolink.PlatformTikTok:
		return "encrypted-media", "TikTok video"
	default:
		return "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture; web-share", "YouTube video"
	}
}

// structuredData builds the schema.org Article block for rich snippets.
func structuredData(page *Page, siteURL string) template.JS {
	doc := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Article",
		"headline":    page.Title,
		"description": page.Description,
		"image":       []string{page.Thumbnail},
		"author": map[string]any{
			"@type": "Organization",
			"name":  page.SiteName,
			"url":   siteURL,
		},
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  page.SiteName,
			"logo": map[string]any{
				"@type":  "ImageObject",
				"url":    siteURL + "/logo.png",
				"width":  200,
				"height": 60,
			},
		},
		"datePublished": page.PublishedAt,
		"dateModified":  page.PublishedAt,
		"mainEntityOfPage": map[string]any{
			"@type": "WebPage",
			"@id":   page.CanonicalURL,
		},
		"articleSection": "Entertainment",
		"keywords":       "viral, social media, entertainment, video, streaming",
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return template.JS(raw)
}
