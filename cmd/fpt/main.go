// Package main is the entry point for the fpt CLI client.
package main

import (
	"github.com/donaldgifford/flight-price-tracker/cmd/fpt/cmd"
)

func main() {
	cmd.Execute()
}
