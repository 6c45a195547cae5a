package models

// Video hosting provider a URL belongs to
type Provider string

const (
	Unknown Provider = ""
	YouTube Provider = "youtube"
	Vimeo   Provider = "vimeo"
)

// String returns the provider name, "unknown" for no provider
func (p Provider) String() string {
	if p == Unknown {
		return "unknown"
	}
	return string(p)
}

// VideoReference is derived from a URL on every call.
// The ID is meaningful only when the provider is known.
type VideoReference struct {
	Provider Provider `json:"provider,omitempty"`
	ID       string   `json:"id,omitempty"`
}

// Known reports whether the reference points to a supported provider
func (v VideoReference) Known() bool {
	return v.Provider != Unknown
}
