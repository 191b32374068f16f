package viewer

import (
	"regexp"
)

// Recognized YouTube URL forms: watch pages, short links and embed paths.
var (
	youtubeURLPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch|embed)|youtu\.be/)`)

	youtubeWatchPattern = regexp.MustCompile(`youtube\.com/watch\?.*v=([^&]+)`)
	youtubeShortPattern = regexp.MustCompile(`youtu\.be/([^?&]+)`)
	youtubeEmbedPattern = regexp.MustCompile(`youtube\.com/embed/([^?&]+)`)
)

// IsYouTubeURL reports whether the URL points at a recognized video host
// rather than a direct video file.
func IsYouTubeURL(url string) bool {
	return youtubeURLPattern.MatchString(url)
}

// YouTubeEmbedURL extracts the video id from any recognized URL form and
// returns the autoplaying inline embed URL, or "" when no id can be found.
func YouTubeEmbedURL(url string) string {
	var videoID string
	if m := youtubeWatchPattern.FindStringSubmatch(url); m != nil {
		videoID = m[1]
	} else if m := youtubeShortPattern.FindStringSubmatch(url); m != nil {
		videoID = m[1]
	} else if m := youtubeEmbedPattern.FindStringSubmatch(url); m != nil {
		videoID = m[1]
	}
	if videoID == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + videoID + "?autoplay=1"
}
