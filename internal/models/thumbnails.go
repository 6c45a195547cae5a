package models

import (
	"google.golang.org/api/youtube/v3"
)

type Thumbnail = youtube.Thumbnail

// ThumbnailEqual checks two thumbnails equality
func ThumbnailEqual(a, b *Thumbnail) bool {
	if a == nil && b == nil {
		return true
	}

	if a == nil || b == nil {
		return false
	}

	// Only compare the actual data fields we care about
	return a.Height == b.Height && a.Url == b.Url && a.Width == b.Width
}
