package services

import (
	"testing"

	"github.com/fariowear/go-storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMediaListDeduplicates(t *testing.T) {
	product := &models.Product{
		Image:   "a.jpg",
		Gallery: []string{"a.jpg", "a.jpg", "b.jpg"},
	}

	media := BuildMediaList(product)

	require.Len(t, media, 2)
	assert.Equal(t, "a.jpg", media[0].URL)
	assert.Equal(t, "b.jpg", media[1].URL)
	assert.Equal(t, models.MediaImage, media[0].Type)
}

func TestBuildMediaListPrimaryImageFirst(t *testing.T) {
	product := &models.Product{
		Image:   "front.jpg",
		Gallery: []string{"side.jpg", "front.jpg", "back.jpg"},
	}

	media := BuildMediaList(product)

	require.Len(t, media, 3)
	assert.Equal(t, "front.jpg", media[0].URL)
	assert.Equal(t, "side.jpg", media[1].URL)
	assert.Equal(t, "back.jpg", media[2].URL)
}

func TestBuildMediaListAppendsVideoLast(t *testing.T) {
	product := &models.Product{
		Image:   "front.jpg",
		Gallery: []string{"side.jpg"},
		Video:   "https://drive.google.com/file/d/1LQ-CwxI7sg5tY4CQuqeEnUcpvFS9-Tec/preview",
	}

	media := BuildMediaList(product)

	require.Len(t, media, 3)
	video := media[2]
	assert.Equal(t, models.MediaVideo, video.Type)
	assert.Equal(t, product.Video, video.URL)
	assert.Equal(t, "https://drive.google.com/thumbnail?id=1LQ-CwxI7sg5tY4CQuqeEnUcpvFS9-Tec&sz=w400", video.Thumbnail)
}

func TestBuildMediaListVideoWithoutDriveID(t *testing.T) {
	product := &models.Product{
		Image: "front.jpg",
		Video: "https://example.com/clip.mp4",
	}

	media := BuildMediaList(product)

	require.Len(t, media, 2)
	assert.Empty(t, media[1].Thumbnail)
}

func TestBuildMediaListEmptyProduct(t *testing.T) {
	assert.Empty(t, BuildMediaList(&models.Product{}))
	assert.Empty(t, BuildMediaList(nil))
}
