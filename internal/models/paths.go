package models

import (
	"path/filepath"
	"strings"
)

// DocumentExt is the extension given to exported metadata documents
const DocumentExt = ".yaml"

// MetadataFileName returns the document name used when exporting into a directory
// Format: <identifier>.yaml
func MetadataFileName(identifier string) string {
	return identifier + DocumentExt
}

// MetadataPath returns the path of the document for identifier inside dir
func MetadataPath(dir, identifier string) string {
	return filepath.Join(dir, MetadataFileName(identifier))
}

// HasDocumentExt reports whether path already ends in .yaml or .yml
func HasDocumentExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// WithDocumentExt appends .yaml to path unless it already carries a YAML extension
func WithDocumentExt(path string) string {
	if HasDocumentExt(path) {
		return path
	}
	return path + DocumentExt
}
