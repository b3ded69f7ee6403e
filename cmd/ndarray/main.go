// Package main provides the ndarray CLI: inspect array literals stored in
// YAML or JSON files and run a guided demo of views and write-through.
//
// Usage:
//
//	ndarray dump matrix.yaml
//	ndarray info --dtype int64 matrix.yaml
//	ndarray demo
package main

import (
	"fmt"
	"log/slog"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger returns a text logger on stderr. Debug output is enabled by --verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
