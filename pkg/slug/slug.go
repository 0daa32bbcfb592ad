// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Chapter slugs back the /learn/{slug} routes of the site, and heading slugs
// are the anchors of a page's table of contents.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen     = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Replaces non-alphanumeric characters with hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Set hands out slugs that are unique within one document. Repeats get a
// numeric suffix: "setup", "setup-1", "setup-2".
//
// The zero value is ready to use.
type Set struct {
	seen map[string]bool
}

// Next returns the slug for s, suffixed if it was already handed out.
func (set *Set) Next(s string) string {
	if set.seen == nil {
		set.seen = make(map[string]bool)
	}

	base := From(s)
	candidate := base
	for n := 1; set.seen[candidate]; n++ {
		candidate = base + "-" + strconv.Itoa(n)
	}

	set.seen[candidate] = true
	return candidate
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
