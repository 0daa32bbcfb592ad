// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/internal/content"
)

func TestOutline(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     []content.Section
	}{
		{
			name:     "empty",
			markdown: "",
			want:     []content.Section{},
		},
		{
			name:     "levels_and_closing_hashes",
			markdown: "# Title\n### Deep ###\n###### Six\n####### Seven",
			want: []content.Section{
				{Level: 1, Title: "Title", Slug: "title"},
				{Level: 3, Title: "Deep", Slug: "deep"},
				{Level: 6, Title: "Six", Slug: "six"},
			},
		},
		{
			name:     "requires_space_after_hashes",
			markdown: "#hashtag\n#\n## Real",
			want: []content.Section{
				{Level: 2, Title: "Real", Slug: "real"},
			},
		},
		{
			name:     "skips_fenced_code",
			markdown: "## Before\n```go\n# not a heading\n```\n~~~\n# nor this\n~~~\n## After",
			want: []content.Section{
				{Level: 2, Title: "Before", Slug: "before"},
				{Level: 2, Title: "After", Slug: "after"},
			},
		},
		{
			name:     "fence_needs_matching_marker",
			markdown: "````\n```\n# hidden\n````\n# Shown",
			want: []content.Section{
				{Level: 1, Title: "Shown", Slug: "shown"},
			},
		},
		{
			name:     "indented_code_is_not_a_heading",
			markdown: "    # code\n   # Three Spaces",
			want: []content.Section{
				{Level: 1, Title: "Three Spaces", Slug: "three-spaces"},
			},
		},
		{
			name:     "duplicate_slugs",
			markdown: "## Setup\n## Setup\n## Café Crème",
			want: []content.Section{
				{Level: 2, Title: "Setup", Slug: "setup"},
				{Level: 2, Title: "Setup", Slug: "setup-1"},
				{Level: 2, Title: "Café Crème", Slug: "cafe-creme"},
			},
		},
		{
			name:     "keeps_inner_hashes",
			markdown: "## C# Basics",
			want: []content.Section{
				{Level: 2, Title: "C# Basics", Slug: "c-basics"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, content.Outline(tt.markdown))
		})
	}
}
