package models

// VimeoRecord is one entry of the legacy Vimeo video metadata response,
// every field formatted as a string.
type VimeoRecord map[string]string
