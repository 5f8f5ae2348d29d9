package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/de-tools/order-reports/pkg/runtime/terminal"
	"github.com/de-tools/order-reports/pkg/services/export"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: export.DefaultRegistry(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
