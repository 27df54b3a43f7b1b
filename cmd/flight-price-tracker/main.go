// Package main is the entry point for the flight-price-tracker server.
package main

import (
	"os"

	"github.com/donaldgifford/flight-price-tracker/cmd/flight-price-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
