package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumns_StartWithPrimaryKey(t *testing.T) {
	assert.Equal(t, "id", ContentChapter.Columns()[0])
	assert.Equal(t, "id", ContentPage.Columns()[0])
	assert.Equal(t, "id", MediaAsset.Columns()[0])

	// "order" is a reserved word; the rank column must never be named after it.
	assert.NotContains(t, ContentChapter.Columns(), "order")
	assert.NotContains(t, ContentPage.Columns(), "order")
}

func TestTables_LiveInTheirSchema(t *testing.T) {
	assert.Equal(t, "content.chapter", ContentChapter.Table)
	assert.Equal(t, "content.page", ContentPage.Table)
	assert.Equal(t, "media.asset", MediaAsset.Table)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "id, title", Join([]string{"id", "title"}))
	assert.Equal(t, "", Join(nil))
}
