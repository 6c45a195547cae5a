package embed

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/vlatan/video-helper/internal/config"
	"github.com/vlatan/video-helper/internal/models"
	"github.com/vlatan/video-helper/internal/source"
)

// Fetcher gets the legacy metadata records of a Vimeo video
type Fetcher interface {
	GetVideo(ctx context.Context, videoID string) ([]models.VimeoRecord, error)
}

// Embed service, holds no state between calls
type Service struct {
	config *config.Config
	vimeo  Fetcher
}

// Create new embed service.
// The fetcher is only needed for Vimeo thumbnails.
func New(cfg *config.Config, vimeo Fetcher) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Service{config: cfg, vimeo: vimeo}
}

// Embed builds the player iframe of a YouTube or Vimeo URL.
// Overrides are layered on top of the provider defaults.
// A URL of any other provider yields a "not found" label.
func (s *Service) Embed(rawURL string, overrides models.Settings) *models.Result {

	provider := source.Classify(rawURL)
	if s.config.Debug {
		log.Printf("embedding '%s' as %s", rawURL, provider)
	}

	switch provider {
	case models.YouTube:
		return s.YouTubeEmbed(rawURL, overrides)
	case models.Vimeo:
		return s.VimeoEmbed(rawURL, overrides)
	default:
		return notFound("Sorry, video not found")
	}
}

// YouTubeEmbed builds the YouTube player iframe of a URL
func (s *Service) YouTubeEmbed(rawURL string, overrides models.Settings) *models.Result {

	id, _ := source.ExtractID(rawURL, models.YouTube)
	settings := models.YouTubeDefaults().Merge(overrides)

	src := fmt.Sprintf(
		"%s/embed/%s?hd=%s",
		strings.TrimSuffix(s.config.YouTubeBase, "/"),
		id,
		settings.String(models.HD),
	)

	return &models.Result{
		Kind:     models.OK,
		Video:    models.VideoReference{Provider: models.YouTube, ID: id},
		Settings: settings,
		Element: &models.Element{
			Name:  "iframe",
			Close: true,
			Attrs: []models.Attr{
				{Key: "width", Value: settings.String(models.Width)},
				{Key: "height", Value: settings.String(models.Height)},
				{Key: "src", Value: src},
				{Key: "frameborder", Value: settings.String(models.FrameBorder)},
				{Key: "allowfullscreen", Value: settings.String(models.AllowFullScreen)},
			},
		},
	}
}

// VimeoEmbed builds the Vimeo player iframe of a URL
func (s *Service) VimeoEmbed(rawURL string, overrides models.Settings) *models.Result {

	id, _ := source.ExtractID(rawURL, models.Vimeo)
	settings := models.VimeoDefaults().Merge(overrides)

	// The renderer escapes the ampersands
	src := fmt.Sprintf(
		"%s/%s?title=%s&byline=%s&portrait=%s&color=%s&autoplay=%s&loop=%s",
		strings.TrimSuffix(s.config.VimeoPlayerBase, "/"),
		id,
		settings.String(models.ShowTitle),
		settings.String(models.ShowByline),
		settings.String(models.ShowPortrait),
		settings.String(models.Color),
		settings.String(models.Autoplay),
		settings.String(models.Loop),
	)

	fullScreen := settings.String(models.AllowFullScreen)

	return &models.Result{
		Kind:     models.OK,
		Video:    models.VideoReference{Provider: models.Vimeo, ID: id},
		Settings: settings,
		Element: &models.Element{
			Name:  "iframe",
			Close: true,
			Attrs: []models.Attr{
				{Key: "src", Value: src},
				{Key: "width", Value: settings.String(models.Width)},
				{Key: "height", Value: settings.String(models.Height)},
				{Key: "frameborder", Value: settings.String(models.FrameBorder)},
				{Key: "webkitAllowFullScreen", Value: fullScreen},
				{Key: "mozallowfullscreen", Value: fullScreen},
				{Key: "allowFullScreen", Value: fullScreen},
			},
		},
	}
}

// notFound builds the error label returned for unsupported URLs
func notFound(text string) *models.Result {
	return &models.Result{
		Kind: models.NotFound,
		Element: &models.Element{
			Name:    "label",
			Content: &text,
			Attrs:   []models.Attr{{Key: "class", Value: "error"}},
		},
	}
}
