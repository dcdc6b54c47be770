// Package main is the entry point for quotectl, the offline pricing CLI.
package main

import (
	"os"

	"github.com/guttosm/print-quote-service/cmd/quotectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
