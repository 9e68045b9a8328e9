package main

import (
	"github.com/bnema/emojipick/internal/cli/cmd"
	"github.com/bnema/emojipick/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// Pass build info to CLI
	cmd.SetBuildInfo(build.NewInfo(version, commit, buildDate))

	// Default: open the picker
	cmd.Execute()
}
