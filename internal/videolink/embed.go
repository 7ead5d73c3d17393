package videolink

import (
	"fmt"
	"regexp"
	"strings"
)

var srcAttrRe = regexp.MustCompile(`src=['"]([^'"]+)['"]`)

// ExtractEmbedSrc returns the src attribute value of the first iframe-like
// tag in the snippet.
func ExtractEmbedSrc(snippet string) (string, bool) {
	if m := srcAttrRe.FindStringSubmatch(snippet); m != nil {
		return m[1], true
	}
	return "", false
}

// NormalizeEmbed rewrites a raw third-party embed snippet into a
// mobile-compatible iframe. Raw embed markup is frequently not responsive or
// not permission-complete for mobile viewports, so the snippet's src is
// lifted into a fresh iframe with full width, fixed height and a full
// permission grant. Snippets without a src are returned unchanged and the
// caller renders them as opaque untrusted markup.
func NormalizeEmbed(snippet string) string {
	src, ok := ExtractEmbedSrc(snippet)
	if !ok {
		return snippet
	}
	return fmt.Sprintf(strings.TrimSpace(`
<iframe
  src="%s"
  width="100%%"
  height="520"
  style="border: none; outline: none; width: 100%%; height: 520px; min-height: 400px; display: block;"
  allowfullscreen="true"
  webkitallowfullscreen="true"
  mozallowfullscreen="true"
  allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture; web-share; fullscreen; camera; microphone; payment; geolocation; autoplay"
  referrerpolicy="no-referrer-when-downgrade"
  loading="eager"
  title="Video Player"
>
  Your browser does not support iframes.
</iframe>`), src)
}
