package templates

import (
	"embed"
	"io/fs"
)

//go:embed catalog/*.yaml
var embeddedCatalog embed.FS

// EmbeddedFS exposes the built-in catalog documents.
func EmbeddedFS() fs.FS {
	return embeddedCatalog
}
