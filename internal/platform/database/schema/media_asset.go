package schema

import "github.com/taibuivan/folio/internal/platform/constants"

// MediaAssetTable represents the 'media.asset' table
type MediaAssetTable struct {
	Table       string
	ID          string
	Filename    string
	StorageKey  string
	URL         string
	ContentType string
	SizeBytes   string
	Width       string
	Height      string
	UploadedAt  string
}

// MediaAsset is the schema definition for media.asset
var MediaAsset = MediaAssetTable{
	Table:       constants.SchemaMedia + ".asset",
	ID:          "id",
	Filename:    "filename",
	StorageKey:  "storagekey",
	URL:         "url",
	ContentType: "contenttype",
	SizeBytes:   "sizebytes",
	Width:       "width",
	Height:      "height",
	UploadedAt:  "uploadedat",
}

func (t MediaAssetTable) Columns() []string {
	return []string{
		t.ID, t.Filename, t.StorageKey, t.URL, t.ContentType, t.SizeBytes, t.Width, t.Height, t.UploadedAt,
	}
}
