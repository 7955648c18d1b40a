// Package main provides the entry point for the diagsync CLI tool.
package main

import "github.com/bsharp-lang/diagsync/cmd/diagsync/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
