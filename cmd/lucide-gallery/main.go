// Package main provides the entry point for the lucide-gallery CLI tool.
package main

import "github.com/AstroAir/lucide-gallery/cmd/lucide-gallery/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
