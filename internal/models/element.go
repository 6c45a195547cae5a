package models

// Attribute of a markup element
type Attr struct {
	Key   string
	Value string
}

// Element describes a markup element handed to the renderer.
// Attributes keep their order.
type Element struct {
	Name    string
	Content *string // nil for elements with no inner content
	Attrs   []Attr
	Close   bool // needs an explicit closing tag
	Void    bool // self-closing, like img
}

// Attr returns the value of the named attribute and whether it exists
func (e *Element) Attr(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Result kind
type Kind int

const (
	OK Kind = iota
	NotFound
)

func (k Kind) String() string {
	if k == OK {
		return "ok"
	}
	return "not found"
}

// Result of an embed or thumbnail request
type Result struct {
	Kind      Kind
	Video     VideoReference
	Settings  Settings   // merged display settings, embed only
	Size      Size       // provider specific size, thumbnail only
	Thumbnail *Thumbnail // thumbnail only
	Element   *Element
}
