package embed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/vlatan/video-helper/internal/models"
	"github.com/vlatan/video-helper/internal/source"
)

var (
	// ErrNoFetcher means a Vimeo thumbnail was requested from a service with no fetcher
	ErrNoFetcher = errors.New("no Vimeo metadata fetcher configured")
	// ErrMissingField means the metadata has no value for the requested size
	ErrMissingField = errors.New("thumbnail missing from Vimeo metadata")
)

// YouTube image name and dimensions of a size
type youTubeTier struct {
	name          string
	width, height int64
}

var youTubeTiers = map[models.Size]youTubeTier{
	models.Thumb:  {"default", 120, 90},
	models.Large:  {"0", 480, 360},
	models.Thumb1: {"1", 120, 90}, // at 25%
	models.Thumb2: {"2", 120, 90}, // at 50%
	models.Thumb3: {"3", 120, 90}, // at 75%
}

var vimeoSizes = []models.Size{
	models.VimeoSmall,
	models.VimeoMedium,
	models.VimeoLarge,
}

// Thumbnail builds the thumbnail image of a YouTube or Vimeo URL.
// Size is one of small, medium or large, anything else is small.
// Options become additional image attributes.
// Only the Vimeo metadata fetch returns an error.
func (s *Service) Thumbnail(
	ctx context.Context,
	rawURL string,
	size string,
	options models.Settings,
) (*models.Result, error) {

	sz := models.NormalizeSize(size)

	provider := source.Classify(rawURL)
	if s.config.Debug {
		log.Printf("thumbnail of '%s' as %s, size %s", rawURL, provider, sz)
	}

	switch provider {
	case models.YouTube:
		// YouTube has no medium thumbnail
		switch sz {
		case models.Small:
			sz = models.Thumb
		case models.Medium:
			sz = models.Large
		}
		return s.YouTubeThumbnail(rawURL, string(sz), options), nil
	case models.Vimeo:
		return s.VimeoThumbnail(ctx, rawURL, "thumbnail_"+string(sz), options)
	default:
		return notFound("Sorry, image not found"), nil
	}
}

// YouTubeThumbnail builds the YouTube thumbnail image of a URL.
// Size is one of thumb, large, thumb1, thumb2 or thumb3, anything else is thumb.
func (s *Service) YouTubeThumbnail(rawURL, size string, options models.Settings) *models.Result {

	sz := models.Size(size)
	tier, ok := youTubeTiers[sz]
	if !ok {
		sz = models.Thumb
		tier = youTubeTiers[sz]
	}

	id, _ := source.ExtractID(rawURL, models.YouTube)
	imageURL := fmt.Sprintf(
		"%s/%s/%s.jpg",
		strings.TrimSuffix(s.config.YouTubeImageBase, "/"),
		id,
		tier.name,
	)

	return &models.Result{
		Kind:      models.OK,
		Video:     models.VideoReference{Provider: models.YouTube, ID: id},
		Size:      sz,
		Thumbnail: &models.Thumbnail{Url: imageURL, Width: tier.width, Height: tier.height},
		Element:   image(imageURL, options),
	}
}

// VimeoThumbnail builds the Vimeo thumbnail image of a URL.
// Size is one of thumbnail_small, thumbnail_medium or thumbnail_large,
// anything else is thumbnail_small.
// The image URL comes from the video metadata, fetch errors are returned as they are.
func (s *Service) VimeoThumbnail(
	ctx context.Context,
	rawURL string,
	size string,
	options models.Settings,
) (*models.Result, error) {

	sz := models.Size(size)
	if !slices.Contains(vimeoSizes, sz) {
		sz = models.VimeoSmall
	}

	if s.vimeo == nil {
		return nil, ErrNoFetcher
	}

	id, _ := source.ExtractID(rawURL, models.Vimeo)
	records, err := s.vimeo.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only the first record is used
	var imageURL string
	if len(records) > 0 {
		imageURL = records[0][string(sz)]
	}

	if imageURL == "" {
		return nil, fmt.Errorf("%w: video '%s', field '%s'", ErrMissingField, id, sz)
	}

	return &models.Result{
		Kind:      models.OK,
		Video:     models.VideoReference{Provider: models.Vimeo, ID: id},
		Size:      sz,
		Thumbnail: &models.Thumbnail{Url: imageURL},
		Element:   image(imageURL, options),
	}, nil
}

// image builds an image element, the options sorted by name
func image(src string, options models.Settings) *models.Element {

	attrs := []models.Attr{{Key: "src", Value: src}}
	for _, k := range slices.Sorted(maps.Keys(options)) {
		attrs = append(attrs, models.Attr{Key: k, Value: options.String(k)})
	}

	return &models.Element{Name: "img", Void: true, Attrs: attrs}
}
