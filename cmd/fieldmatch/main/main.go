package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/fieldmatch/cmd/fieldmatch"
	"github.com/arthur-debert/fieldmatch/pkg/style"
)

func main() {
	rootCmd := fieldmatch.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
