package viewer

import (
	"github.com/project-canvas/backend/internal/entities"
)

// Modal content is a tagged union with one variant per hotspot type, each
// carrying only the fields its presentation needs.

type ModalContent interface {
	modalContent()
}

// TextModal shows the title, the Markdown description and an optional image.
type TextModal struct {
	Title       string
	Description string // Markdown source; rendering is the caller's concern
	Image       string // optional
}

// ImageModal shows the title and the full-size image.
type ImageModal struct {
	Title string
	Image string
}

// VideoModal shows the title and either a direct-file video player or a
// recognized-host inline embed. Playback starts on open and stops on close.
type VideoModal struct {
	Title    string
	VideoURL string
	EmbedURL string // set when the URL matches a recognized video host
	IsEmbed  bool
}

func (TextModal) modalContent()  {}
func (ImageModal) modalContent() {}
func (VideoModal) modalContent() {}

// ModalContentFor selects the presentation for a hotspot based on its type.
// Unknown types fall back to the text presentation.
func ModalContentFor(h *Hotspot) ModalContent {
	switch h.Type {
	case entities.HotspotTypeImage:
		return ImageModal{Title: h.Title, Image: h.Image}
	case entities.HotspotTypeVideo:
		embed := YouTubeEmbedURL(h.Video)
		return VideoModal{
			Title:    h.Title,
			VideoURL: h.Video,
			EmbedURL: embed,
			IsEmbed:  IsYouTubeURL(h.Video) && embed != "",
		}
	default:
		return TextModal{Title: h.Title, Description: h.Description, Image: h.Image}
	}
}
