package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/datacube-go/agdcmeta/internal/cli"
	"github.com/datacube-go/agdcmeta/pkg/agdcmeta"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(agdcmeta.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(agdcmeta.ExitCodeForError(err))
	}
}
