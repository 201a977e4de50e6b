package notes

import _ "embed"

// Version is the release of the notes module.
//
//go:embed VERSION
var Version string
