// internal/app/system/sanitize/sanitize.go

// Package sanitize strips markup from user-supplied text. Group names,
// introductions, post titles/contents, nicknames, and comments are all
// plain text; anything that looks like HTML is removed before storage.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// Plain removes all HTML elements and attributes from s, returning the
// remaining text content.
func Plain(s string) string {
	return strict.Sanitize(s)
}

// PlainAll applies Plain to every element of ss in place and returns ss.
func PlainAll(ss []string) []string {
	for i, s := range ss {
		ss[i] = Plain(s)
	}
	return ss
}
