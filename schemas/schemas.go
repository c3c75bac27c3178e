package schemas

import "embed"

// SchemasFS содержит все JSON-схемы контрактов, встроенные в бинарник.
//
//go:embed catalog
var SchemasFS embed.FS
