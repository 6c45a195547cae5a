// Package markup serializes element descriptions into HTML.
package markup

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/vlatan/video-helper/internal/models"
)

// Attribute names that are safe to write unquoted
var validAttrName = regexp.MustCompile(`^[a-zA-Z_:][-a-zA-Z0-9_:.]*$`)

// Inner text allows no markup at all
var textPolicy = bluemonday.StrictPolicy()

// Tag renders an opening tag.
// When content is not nil it is sanitized and followed by the closing tag.
func Tag(name string, content *string, attrs []models.Attr) string {

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(name)
	writeAttrs(&b, attrs)
	b.WriteString(">")

	if content != nil {
		b.WriteString(textPolicy.Sanitize(*content))
		b.WriteString(CloseTag(name))
	}

	return b.String()
}

// CloseTag renders a closing tag
func CloseTag(name string) string {
	return "</" + name + ">"
}

// Image renders a self-closing image tag.
// The image always gets an alt attribute, empty unless given in attrs.
func Image(src string, attrs []models.Attr) string {

	all := []models.Attr{{Key: "src", Value: src}}
	if !hasAttr(attrs, "alt") {
		all = append(all, models.Attr{Key: "alt", Value: ""})
	}

	for _, a := range attrs {
		if a.Key != "src" {
			all = append(all, a)
		}
	}

	var b strings.Builder
	b.WriteString("<img")
	writeAttrs(&b, all)
	b.WriteString(" />")
	return b.String()
}

// Render serializes an element
func Render(el *models.Element) string {

	if el == nil {
		return ""
	}

	if el.Void {
		if el.Name == "img" {
			src, _ := el.Attr("src")
			return Image(src, el.Attrs)
		}

		var b strings.Builder
		b.WriteString("<")
		b.WriteString(el.Name)
		writeAttrs(&b, el.Attrs)
		b.WriteString(" />")
		return b.String()
	}

	out := Tag(el.Name, el.Content, el.Attrs)
	if el.Close && el.Content == nil {
		out += CloseTag(el.Name)
	}

	return out
}

// Attributes with names that could break out of the tag are dropped
func writeAttrs(b *strings.Builder, attrs []models.Attr) {
	for _, a := range attrs {
		if !validAttrName.MatchString(a.Key) {
			continue
		}
		b.WriteString(" ")
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteString(`"`)
	}
}

func hasAttr(attrs []models.Attr, key string) bool {
	for _, a := range attrs {
		if a.Key == key {
			return true
		}
	}
	return false
}
