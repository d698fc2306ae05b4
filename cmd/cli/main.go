package main

import (
	"fmt"
	"os"

	"github.com/de-tools/data-reports/pkg/runtime/terminal"
	"github.com/de-tools/data-reports/pkg/services/report"
)

func main() {
	registry := report.NewRegistry()
	if err := report.RegisterBuiltins(registry); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry: registry,
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
