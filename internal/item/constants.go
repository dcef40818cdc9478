package item

// Error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgSchemaCheckFailed  = "catalog schema check failed: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgInvalidCatalog     = "invalid catalog: %w"
	ErrFmtDuplicateItem      = "%w: '%s'"
	ErrFmtUnknownItem        = "%w: '%s'"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Shop catalog loaded"
)
