// Package main provides the entry point for the vi-snake game
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lixenwraith/vi-snake/cli"
	"github.com/lixenwraith/vi-snake/core"
)

// Set via ldflags
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	// Panic Recovery: ensure the terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(context.Background(), info); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(cli.ExitError)
	}
}
