package schema

import "github.com/taibuivan/folio/internal/platform/constants"

// ContentChapterTable represents the 'content.chapter' table
type ContentChapterTable struct {
	Table     string
	ID        string
	Title     string
	Slug      string
	SortOrder string
	CreatedAt string
	UpdatedAt string
}

// ContentChapter is the schema definition for content.chapter
var ContentChapter = ContentChapterTable{
	Table:     constants.SchemaContent + ".chapter",
	ID:        "id",
	Title:     "title",
	Slug:      "slug",
	SortOrder: "sortorder",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t ContentChapterTable) Columns() []string {
	return []string{t.ID, t.Title, t.Slug, t.SortOrder, t.CreatedAt, t.UpdatedAt}
}
