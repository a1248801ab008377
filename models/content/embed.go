package content

import (
	"net/url"
	"strings"
)

const (
	youtubeEmbedPrefix = "https://www.youtube.com/embed/"
	vimeoPlayerPrefix  = "https://player.vimeo.com/video/"
)

// EmbedURL turns YouTube and Vimeo page links into their embeddable player
// URL. Links on other hosts come back trimmed but otherwise unchanged.
func EmbedURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}

	switch {
	case strings.Contains(u, "youtube.com/embed/"):
		if id := firstSegment(after(u, "youtube.com/embed/")); id != "" {
			return youtubeEmbedPrefix + id
		}
		return u
	case strings.Contains(u, "youtube.com"), strings.Contains(u, "youtu.be"):
		parsed, err := url.Parse(u)
		if err != nil {
			return u
		}
		var id string
		switch {
		case parsed.Hostname() == "youtu.be":
			id = firstSegment(strings.TrimPrefix(parsed.Path, "/"))
		case strings.HasPrefix(parsed.Path, "/shorts/"):
			id = firstSegment(strings.TrimPrefix(parsed.Path, "/shorts/"))
		default:
			id = parsed.Query().Get("v")
		}
		if id == "" {
			return u
		}
		return youtubeEmbedPrefix + id
	case strings.Contains(u, "player.vimeo.com/video/"):
		if id := firstSegment(after(u, "player.vimeo.com/video/")); id != "" {
			return vimeoPlayerPrefix + id
		}
		return u
	case strings.Contains(u, "vimeo.com/"):
		if id := firstSegment(after(u, "vimeo.com/")); id != "" {
			return vimeoPlayerPrefix + id
		}
		return u
	}
	return u
}

func after(s, sep string) string {
	_, rest, _ := strings.Cut(s, sep)
	return rest
}

// firstSegment strips any query string and trailing path.
func firstSegment(s string) string {
	s, _, _ = strings.Cut(s, "?")
	s, _, _ = strings.Cut(s, "/")
	s, _, _ = strings.Cut(s, "#")
	return s
}
