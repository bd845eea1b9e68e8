package models

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaItem is one displayable entry of a product's media list: an image
// URL, or a video reference with an optional thumbnail.
type MediaItem struct {
	Type      MediaType
	URL       string
	Thumbnail string
}
