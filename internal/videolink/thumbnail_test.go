package videolink

import (
	"testing"

	"github.com/rownak648/storyline/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveThumbnailPriority(t *testing.T) {
	const ytEmbed = `<iframe src="https://www.youtube.com/embed/dQw4w9WgXcQ"></iframe>`

	tests := []struct {
		name string
		post models.Post
		want string
	}{
		{
			name: "operator thumbnail wins over everything",
			post: models.Post{
				ThumbnailURL: "https://cdn.example.com/thumb.jpg",
				MediaURL:     "https://cdn.example.com/photo.jpg",
				MediaType:    models.MediaTypeImage,
				EmbedCode:    ytEmbed,
			},
			want: "https://cdn.example.com/thumb.jpg",
		},
		{
			name: "image media beats youtube embed",
			post: models.Post{
				MediaURL:  "https://cdn.example.com/photo.jpg",
				MediaType: models.MediaTypeImage,
				EmbedCode: ytEmbed,
			},
			want: "https://cdn.example.com/photo.jpg",
		},
		{
			name: "youtube embed derives a thumbnail",
			post: models.Post{EmbedCode: ytEmbed},
			want: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		},
		{
			name: "youtube embed beats video media",
			post: models.Post{
				EmbedCode: ytEmbed,
				MediaURL:  "https://cdn.example.com/clip.mp4",
				MediaType: models.MediaTypeVideo,
			},
			want: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		},
		{
			// The video file URL stands in for an image here; kept as the
			// original behaves.
			name: "video media used directly",
			post: models.Post{
				MediaURL:  "https://cdn.example.com/clip.mp4",
				MediaType: models.MediaTypeVideo,
			},
			want: "https://cdn.example.com/clip.mp4",
		},
		{
			name: "non-youtube embed falls past priority 3",
			post: models.Post{EmbedCode: `<iframe src="https://player.vimeo.com/video/76979871"></iframe>`},
			want: PlaceholderImage,
		},
		{
			name: "empty post gets the placeholder",
			post: models.Post{},
			want: PlaceholderImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveThumbnail(&tt.post)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestPlatformThumbnail(t *testing.T) {
	assert.Equal(t,
		"https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		PlatformThumbnail(VideoRef{Platform: PlatformYouTube, VideoID: "dQw4w9WgXcQ"}))
	assert.Equal(t,
		"https://vumbnail.com/76979871.jpg",
		PlatformThumbnail(VideoRef{Platform: PlatformVimeo, VideoID: "76979871"}))
	assert.Contains(t,
		PlatformThumbnail(VideoRef{Platform: PlatformTikTok, VideoID: "1"}),
		"TikTok+Video")
}
