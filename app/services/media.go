package services

import (
	"fmt"
	"regexp"

	"github.com/fariowear/go-storefront/app/models"
)

var driveIDPattern = regexp.MustCompile(`/d/([^/]+)`)

// BuildMediaList derives the ordered, deduplicated media sequence for a
// product: primary image first, then gallery entries, then the video (when
// present) with a Google Drive thumbnail if one can be derived. Duplicate
// URLs keep their first-seen position. A product with no media yields an
// empty list; callers must check before indexing.
func BuildMediaList(p *models.Product) []models.MediaItem {
	if p == nil {
		return nil
	}

	items := make([]models.MediaItem, 0, len(p.Gallery)+2)
	seen := make(map[string]bool, len(p.Gallery)+2)

	appendImage := func(url string) {
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		items = append(items, models.MediaItem{Type: models.MediaImage, URL: url})
	}

	appendImage(p.Image)
	for _, url := range p.Gallery {
		appendImage(url)
	}

	if p.Video != "" {
		items = append(items, models.MediaItem{
			Type:      models.MediaVideo,
			URL:       p.Video,
			Thumbnail: driveVideoThumbnail(p.Video),
		})
	}

	return items
}

// driveVideoThumbnail extracts the Google Drive file id from a video URL
// and returns the matching thumbnail URL, or "" when the URL has no id.
func driveVideoThumbnail(videoURL string) string {
	match := driveIDPattern.FindStringSubmatch(videoURL)
	if match == nil {
		return ""
	}
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w400", match[1])
}
