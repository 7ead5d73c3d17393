package videolink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmbedRewritesIframe(t *testing.T) {
	raw := `<iframe width="560" height="315" src="https://streamable.com/e/abc123" frameborder="0"></iframe>`
	got := NormalizeEmbed(raw)

	assert.Contains(t, got, `src="https://streamable.com/e/abc123"`)
	assert.Contains(t, got, `width="100%"`)
	assert.Contains(t, got, `height="520"`)
	assert.Contains(t, got, "min-height: 400px")
	assert.Contains(t, got, `loading="eager"`)
	assert.Contains(t, got, `title="Video Player"`)
	assert.Contains(t, got, "allowfullscreen")
	assert.Contains(t, got, "camera; microphone; payment; geolocation")
	// The original dimensions are dropped entirely.
	assert.NotContains(t, got, `width="560"`)
}

func TestNormalizeEmbedSingleQuotedSrc(t *testing.T) {
	got := NormalizeEmbed(`<iframe src='https://example.com/player?id=9'></iframe>`)
	assert.Contains(t, got, `src="https://example.com/player?id=9"`)
}

func TestNormalizeEmbedNoSrcPassesThrough(t *testing.T) {
	raw := `<blockquote class="some-widget">content</blockquote>`
	assert.Equal(t, raw, NormalizeEmbed(raw))
	assert.Equal(t, "", NormalizeEmbed(""))
}

func TestNormalizeEmbedIdempotentOnSrc(t *testing.T) {
	raw := `<iframe src="https://streamable.com/e/abc123"></iframe>`
	once := NormalizeEmbed(raw)
	twice := NormalizeEmbed(once)

	src1, ok := ExtractEmbedSrc(once)
	require.True(t, ok)
	src2, ok := ExtractEmbedSrc(twice)
	require.True(t, ok)
	assert.Equal(t, src1, src2)
	assert.Equal(t, "https://streamable.com/e/abc123", src2)
}

func TestExtractEmbedSrcFirstTagWins(t *testing.T) {
	raw := strings.Join([]string{
		`<iframe src="https://first.example/a"></iframe>`,
		`<iframe src="https://second.example/b"></iframe>`,
	}, "\n")
	src, ok := ExtractEmbedSrc(raw)
	require.True(t, ok)
	assert.Equal(t, "https://first.example/a", src)
}
