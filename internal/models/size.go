package models

// Size token of a thumbnail request
type Size string

// Generic sizes accepted by the public entry point
const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

// YouTube specific sizes
const (
	Thumb  Size = "thumb"
	Thumb1 Size = "thumb1"
	Thumb2 Size = "thumb2"
	Thumb3 Size = "thumb3"
)

// Vimeo specific sizes, named after the metadata fields
const (
	VimeoSmall  Size = "thumbnail_small"
	VimeoMedium Size = "thumbnail_medium"
	VimeoLarge  Size = "thumbnail_large"
)

// NormalizeSize returns one of small, medium or large.
// Matching is case-sensitive, anything else becomes small.
func NormalizeSize(s string) Size {
	switch size := Size(s); size {
	case Small, Medium, Large:
		return size
	default:
		return Small
	}
}
