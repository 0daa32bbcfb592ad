package schema

import "github.com/taibuivan/folio/internal/platform/constants"

// ContentPageTable represents the 'content.page' table
type ContentPageTable struct {
	Table     string
	ID        string
	ChapterID string
	Title     string
	Content   string
	SortOrder string
	Status    string
	CreatedAt string
	UpdatedAt string
}

// ContentPage is the schema definition for content.page
var ContentPage = ContentPageTable{
	Table:     constants.SchemaContent + ".page",
	ID:        "id",
	ChapterID: "chapterid",
	Title:     "title",
	Content:   "content",
	SortOrder: "sortorder",
	Status:    "status",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t ContentPageTable) Columns() []string {
	return []string{
		t.ID, t.ChapterID, t.Title, t.Content, t.SortOrder, t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
