// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"bufio"
	"strings"

	"github.com/taibuivan/folio/pkg/slug"
)

// maxHeadingLevel is the deepest ATX heading, ######.
const maxHeadingLevel = 6

// Outline extracts the ATX headings of a Markdown document in reading order.
// Headings inside fenced code blocks are skipped. Slugs are unique within the
// document and match the anchors the site renders.
func Outline(markdown string) []Section {
	sections := make([]Section, 0)
	slugs := &slug.Set{}

	var fence string
	scanner := bufio.NewScanner(strings.NewReader(markdown))
	scanner.Buffer(make([]byte, 0, 64*1024), len(markdown)+1)

	for scanner.Scan() {
		line := trimIndent(scanner.Text())

		if marker := fenceMarker(line); marker != "" {
			switch {
			case fence == "":
				fence = marker
			case strings.HasPrefix(marker, fence) && strings.TrimSpace(strings.TrimLeft(line, fence[:1])) == "":
				fence = ""
			}
			continue
		}
		if fence != "" {
			continue
		}

		level, title, ok := atxHeading(line)
		if !ok {
			continue
		}

		sections = append(sections, Section{
			Level: level,
			Title: title,
			Slug:  slugs.Next(title),
		})
	}

	return sections
}

// trimIndent strips up to three leading spaces. Four or more make an
// indented code block, which is left alone so it never parses as a heading.
func trimIndent(line string) string {
	for i := 0; i < 3 && strings.HasPrefix(line, " "); i++ {
		line = line[1:]
	}
	return line
}

// fenceMarker returns the run of backticks or tildes that opens or closes a
// fenced code block, or "".
func fenceMarker(line string) string {
	for _, char := range []string{"`", "~"} {
		run := len(line) - len(strings.TrimLeft(line, char))
		if run >= 3 {
			return line[:run]
		}
	}
	return ""
}

func atxHeading(line string) (int, string, bool) {
	level := len(line) - len(strings.TrimLeft(line, "#"))
	if level == 0 || level > maxHeadingLevel {
		return 0, "", false
	}

	rest := line[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, "", false
	}

	title := strings.TrimSpace(rest)

	// Optional closing sequence: "## Title ##".
	if trimmed := strings.TrimRight(title, "#"); trimmed != title {
		if trimmed == "" || strings.HasSuffix(trimmed, " ") || strings.HasSuffix(trimmed, "\t") {
			title = strings.TrimSpace(trimmed)
		}
	}

	if title == "" {
		return 0, "", false
	}
	return level, title, true
}
