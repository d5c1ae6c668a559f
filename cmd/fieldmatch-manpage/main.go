package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/fieldmatch/cmd/fieldmatch"
	"github.com/arthur-debert/fieldmatch/internal/version"
)

func main() {
	header := &doc.GenManHeader{
		Title:   "FIELDMATCH",
		Section: "1",
		Source:  "fieldmatch " + version.Version,
		Manual:  "fieldmatch manual",
	}

	if err := doc.GenMan(fieldmatch.NewRootCmd(), header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
