package models

import (
	"fmt"
	"maps"
)

// Recognized display settings
const (
	HD              = "hd"
	Width           = "width"
	Height          = "height"
	AllowFullScreen = "allowFullScreen"
	FrameBorder     = "frameBorder"
	ShowTitle       = "showTitle"
	ShowByline      = "showByline"
	ShowPortrait    = "showPortrait"
	Color           = "color"
	Autoplay        = "autoplay"
	Loop            = "loop"
)

// Option names accepted by older callers
var legacyKeys = map[string]string{
	"allowfullscreen": AllowFullScreen,
	"frameborder":     FrameBorder,
	"show_title":      ShowTitle,
	"show_byline":     ShowByline,
	"show_portrait":   ShowPortrait,
}

// Settings is an open mapping of display options.
// Unrecognized keys are kept as they are.
type Settings map[string]any

// YouTubeDefaults returns a fresh copy of the YouTube display defaults
func YouTubeDefaults() Settings {
	return Settings{
		HD:              true,
		Width:           624,
		Height:          369,
		AllowFullScreen: "true",
		FrameBorder:     0,
	}
}

// VimeoDefaults returns a fresh copy of the Vimeo display defaults
func VimeoDefaults() Settings {
	return Settings{
		Width:           400,
		Height:          225,
		ShowTitle:       1,
		ShowByline:      1,
		ShowPortrait:    0,
		Color:           "00adef",
		AllowFullScreen: 1,
		Autoplay:        1,
		Loop:            1,
		FrameBorder:     0,
	}
}

// Merge returns a new mapping with the overrides layered on top of s.
// Legacy option names are mapped onto their current names,
// a current name given alongside its legacy one wins.
// Neither s nor overrides is modified.
func (s Settings) Merge(overrides Settings) Settings {

	merged := maps.Clone(s)
	if merged == nil {
		merged = Settings{}
	}

	for k, v := range overrides {
		canonical, legacy := legacyKeys[k]
		if !legacy {
			merged[k] = v
			continue
		}
		if _, ok := overrides[canonical]; !ok {
			merged[canonical] = v
		}
	}

	return merged
}

// String returns the value of a setting formatted for a URL or an attribute.
// Booleans are rendered as 1 and 0, a missing key as an empty string.
func (s Settings) String(key string) string {
	return FormatValue(s[key])
}

// FormatValue formats a setting value
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "1"
		}
		return "0"
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
