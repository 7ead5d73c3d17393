package videolink

import "github.com/rownak648/storyline/internal/models"

// PlaceholderImage is the generic preview used when no better thumbnail
// exists. Served by the application itself so the URL is always fetchable.
const PlaceholderImage = "/placeholder.svg?height=630&width=1200&text=Social+Media+Post"

// YouTubeThumbnail returns the highest-resolution still YouTube hosts for a
// video.
func YouTubeThumbnail(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/maxresdefault.jpg"
}

// PlatformThumbnail returns a preview image URL for the referenced video.
// Only YouTube and Vimeo expose direct stills; the rest get a labeled
// placeholder.
func PlatformThumbnail(ref VideoRef) string {
	switch ref.Platform {
	case PlatformYouTube:
		return YouTubeThumbnail(ref.VideoID)
	case PlatformVimeo:
		return "https://vumbnail.com/" + ref.VideoID + ".jpg"
	case PlatformTikTok:
		return "/placeholder.svg?height=630&width=1200&text=TikTok+Video"
	case PlatformInstagram:
		return "/placeholder.svg?height=630&width=1200&text=Instagram+Video"
	case PlatformFacebook:
		return "/placeholder.svg?height=630&width=1200&text=Facebook+Video"
	case PlatformTwitter:
		return "/placeholder.svg?height=630&width=1200&text=Twitter+Video"
	default:
		return "/placeholder.svg?height=630&width=1200&text=Video+Content"
	}
}

// ResolveThumbnail picks the single best preview image for a post. The
// priority is fixed and total; the result is always a directly fetchable
// image URL, never empty. Note that priority 4 hands back a video file URL
// as the "image" when the uploaded media is a video.
func ResolveThumbnail(post *models.Post) string {
	// Priority 1: operator-supplied thumbnail.
	if post.ThumbnailURL != "" {
		return post.ThumbnailURL
	}

	// Priority 2: uploaded media, if it is an image.
	if post.MediaURL != "" && post.MediaType == models.MediaTypeImage {
		return post.MediaURL
	}

	// Priority 3: derived YouTube thumbnail from the embed snippet.
	if post.EmbedCode != "" {
		if videoID, ok := MatchEmbedSnippet(post.EmbedCode); ok {
			return YouTubeThumbnail(videoID)
		}
	}

	// Priority 4: the uploaded video file itself.
	if post.MediaURL != "" && post.MediaType == models.MediaTypeVideo {
		return post.MediaURL
	}

	return PlaceholderImage
}
