package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/specreport/cmd/specreport"
)

func main() {
	rootCmd := specreport.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
