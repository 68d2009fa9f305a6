// Package appfs embeds the static files shipped with the binaries.
package appfs

import "embed"

// Fixtures holds the JSON tables the mock data source is seeded from, under fixtures/.
//
//go:embed fixtures/*.json
var Fixtures embed.FS
