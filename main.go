// Package main is the entry point for the rawtruth CLI.
package main

import (
	"fmt"
	"os"

	"github.com/mzkit/rawtruth/cmd"
	"github.com/mzkit/rawtruth/internal/iocache"
)

func main() {
	cmd.SetRunManager(iocache.Manager)

	err := cmd.Execute()

	// Always release the run store and flush profiles, even when the
	// command itself failed.
	iocache.CloseRunTracking()
	if perr := cmd.StopProfiling(); perr != nil && err == nil {
		err = perr
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
