// Package embedded bundles the icon metadata documents into the binary.
package embedded

import (
	"embed"
)

// FS embeds the metadata documents at build time: the icon definitions
// plus the category and tag indexes, in the shapes produced by the asset
// pipeline.
//
//go:embed metadata/*
var FS embed.FS
