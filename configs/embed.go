// Package configs embeds the default game data shipped with the binary.
package configs

import "embed"

// FS holds the shop catalog and its JSON schema
//
//go:embed shop/*.json schemas/*.json
var FS embed.FS

// Paths inside FS
const (
	CatalogPath       = "shop/catalog.json"
	CatalogSchemaPath = "schemas/catalog.schema.json"
)
