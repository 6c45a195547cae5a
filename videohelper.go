// Package videohelper builds embeddable players and thumbnail images
// for YouTube and Vimeo video URLs.
package videohelper

import (
	"context"

	"github.com/vlatan/video-helper/internal/config"
	"github.com/vlatan/video-helper/internal/embed"
	"github.com/vlatan/video-helper/internal/integrations/vimeo"
	"github.com/vlatan/video-helper/internal/markup"
	"github.com/vlatan/video-helper/internal/models"
	"github.com/vlatan/video-helper/internal/source"
)

type (
	Config         = config.Config
	Settings       = models.Settings
	Result         = models.Result
	Element        = models.Element
	Thumbnail      = models.Thumbnail
	Provider       = models.Provider
	VideoReference = models.VideoReference
)

// Result kinds
const (
	OK       = models.OK
	NotFound = models.NotFound
)

// Providers
const (
	Unknown = models.Unknown
	YouTube = models.YouTube
	Vimeo   = models.Vimeo
)

// Helper renders players and thumbnails, safe for concurrent use
type Helper struct {
	embed *embed.Service
}

// New creates a helper with the given config.
// A nil config is read from the environment.
func New(cfg *Config) (*Helper, error) {

	if cfg == nil {
		var err error
		if cfg, err = config.New(); err != nil {
			return nil, err
		}
	} else if err := cfg.Validate(); err != nil {
		return nil, err
	}

	vs, err := vimeo.New(cfg)
	if err != nil {
		return nil, err
	}

	return &Helper{embed: embed.New(cfg, vs)}, nil
}

// Default creates a helper with the default config
func Default() *Helper {
	h, err := New(config.Default())
	if err != nil {
		panic(err)
	}
	return h
}

// DefaultConfig returns the default config, ignoring the environment
func DefaultConfig() *Config {
	return config.Default()
}

// Embed returns the player markup of a video URL,
// or a "video not found" label for an unsupported URL.
func (h *Helper) Embed(url string, settings Settings) string {
	return markup.Render(h.embed.Embed(url, settings).Element)
}

// EmbedResult is like Embed but returns the result before rendering
func (h *Helper) EmbedResult(url string, settings Settings) *Result {
	return h.embed.Embed(url, settings)
}

// YouTubeEmbed returns the YouTube player markup of a URL
func (h *Helper) YouTubeEmbed(url string, settings Settings) string {
	return markup.Render(h.embed.YouTubeEmbed(url, settings).Element)
}

// VimeoEmbed returns the Vimeo player markup of a URL
func (h *Helper) VimeoEmbed(url string, settings Settings) string {
	return markup.Render(h.embed.VimeoEmbed(url, settings).Element)
}

// Thumbnail returns the thumbnail image markup of a video URL,
// or an "image not found" label for an unsupported URL.
// Size is small, medium or large, anything else is small.
// Options are added to the image attributes.
// Vimeo thumbnails need a metadata request, its failure is returned.
func (h *Helper) Thumbnail(ctx context.Context, url, size string, options Settings) (string, error) {
	result, err := h.embed.Thumbnail(ctx, url, size, options)
	if err != nil {
		return "", err
	}
	return markup.Render(result.Element), nil
}

// ThumbnailResult is like Thumbnail but returns the result before rendering
func (h *Helper) ThumbnailResult(ctx context.Context, url, size string, options Settings) (*Result, error) {
	return h.embed.Thumbnail(ctx, url, size, options)
}

// YouTubeThumbnail returns the YouTube thumbnail markup of a URL.
// Size is thumb, large, thumb1, thumb2 or thumb3.
func (h *Helper) YouTubeThumbnail(url, size string, options Settings) string {
	return markup.Render(h.embed.YouTubeThumbnail(url, size, options).Element)
}

// VimeoThumbnail returns the Vimeo thumbnail markup of a URL.
// Size is thumbnail_small, thumbnail_medium or thumbnail_large.
func (h *Helper) VimeoThumbnail(ctx context.Context, url, size string, options Settings) (string, error) {
	result, err := h.embed.VimeoThumbnail(ctx, url, size, options)
	if err != nil {
		return "", err
	}
	return markup.Render(result.Element), nil
}

// Resolve returns the provider and the video ID of a URL
func Resolve(url string) VideoReference {
	return source.Resolve(url)
}

// Render serializes an element of a result
func Render(el *Element) string {
	return markup.Render(el)
}
