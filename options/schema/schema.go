// Package schema embeds the JSON schema of the options document.
package schema

import "embed"

//go:embed *.schema.json
var FS embed.FS
