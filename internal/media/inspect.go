// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"bytes"
	"image"
	"mime"
	"path/filepath"
	"slices"
	"strings"

	// Registered decoders for the accepted formats.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// imageType describes one accepted upload format.
type imageType struct {
	// format is the name the image package registers the decoder under.
	format string

	// extensions are accepted as-is for storage keys; the first is canonical.
	extensions []string
}

var allowedTypes = map[string]imageType{
	"image/jpeg": {format: "jpeg", extensions: []string{".jpg", ".jpeg"}},
	"image/png":  {format: "png", extensions: []string{".png"}},
	"image/webp": {format: "webp", extensions: []string{".webp"}},
}

// AllowedContentTypes lists the accepted media types.
func AllowedContentTypes() []string {
	types := make([]string, 0, len(allowedTypes))
	for contentType := range allowedTypes {
		types = append(types, contentType)
	}
	slices.Sort(types)
	return types
}

// normalizeContentType lowercases the media type and drops parameters.
func normalizeContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

// dimensions decodes only the image header and checks that it matches the
// declared format.
func dimensions(data []byte, kind imageType) (int, int, bool) {
	config, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || format != kind.format {
		return 0, 0, false
	}
	return config.Width, config.Height, true
}

// storageExtension keeps the lowercased original extension when it fits the
// type and falls back to the canonical one.
func storageExtension(filename string, kind imageType) string {
	extension := strings.ToLower(filepath.Ext(filename))
	if slices.Contains(kind.extensions, extension) {
		return extension
	}
	return kind.extensions[0]
}
