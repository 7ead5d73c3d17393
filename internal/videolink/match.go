// Package videolink identifies known video platforms in URLs and embed
// snippets and derives player and thumbnail URLs from them.
package videolink

import "regexp"

// Platform tags for supported video sites.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformVimeo     Platform = "vimeo"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
)

// VideoRef is the result of matching a URL against the known platforms.
type VideoRef struct {
	Platform Platform `json:"platform"`
	VideoID  string   `json:"video_id"`
}

// matchRules are tried in order; the first pattern that matches wins, so a
// URL that happens to satisfy two patterns resolves to the earlier rule.
var matchRules = []struct {
	platform Platform
	re       *regexp.Regexp
}{
	{PlatformYouTube, regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)},
	{PlatformTikTok, regexp.MustCompile(`(?:tiktok\.com/@[^/]+/video/|vm\.tiktok\.com/|tiktok\.com/t/)([A-Za-z0-9]+)`)},
	{PlatformInstagram, regexp.MustCompile(`(?:instagram\.com/(?:p|reel|tv)/|instagr\.am/p/)([A-Za-z0-9_-]+)`)},
	{PlatformVimeo, regexp.MustCompile(`vimeo\.com/([0-9]+)`)},
	{PlatformFacebook, regexp.MustCompile(`(?:facebook\.com/.*/videos/|fb\.watch/)([0-9]+)`)},
	{PlatformTwitter, regexp.MustCompile(`(?:twitter\.com/.*/status/|x\.com/.*/status/)([0-9]+)`)},
}

// Match identifies the video platform referenced by url and extracts its
// platform-specific video identifier. The second return value is false when
// no platform matches; callers then treat the input as a direct playable
// media URL.
func Match(url string) (VideoRef, bool) {
	for _, rule := range matchRules {
		if m := rule.re.FindStringSubmatch(url); m != nil {
			return VideoRef{Platform: rule.platform, VideoID: m[1]}, true
		}
	}
	return VideoRef{}, false
}

// embedSnippetRe recognizes only YouTube references. It predates Match and
// is kept for embed snippets saved before the general matcher existed.
var embedSnippetRe = regexp.MustCompile(`(?:youtube\.com/embed/|youtu\.be/|youtube\.com/watch\?v=)([a-zA-Z0-9_-]{11})`)

// MatchEmbedSnippet extracts a YouTube video ID from a raw embed snippet.
// Checked before Match whenever the input is known to be an embed snippet
// rather than a bare URL.
func MatchEmbedSnippet(snippet string) (string, bool) {
	if m := embedSnippetRe.FindStringSubmatch(snippet); m != nil {
		return m[1], true
	}
	return "", false
}

// PlayerURL returns the embeddable player URL for the referenced video.
// Platforms without an iframe player return false; callers fall back to a
// generic video element.
func PlayerURL(ref VideoRef) (string, bool) {
	switch ref.Platform {
	case PlatformYouTube:
		return "https://www.youtube.com/embed/" + ref.VideoID + "?enablejsapi=1&controls=1&modestbranding=1&rel=0", true
	case PlatformVimeo:
		return "https://player.vimeo.com/video/" + ref.VideoID + "?title=0&byline=0&portrait=0", true
	case PlatformTikTok:
		return "https://www.tiktok.com/embed/v2/" + ref.VideoID, true
	default:
		return "", false
	}
}
