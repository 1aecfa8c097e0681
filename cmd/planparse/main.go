// Package main converts a plain-text reading plan into the JSON artifact the
// bot reads at firing time. Runs once and exits.
package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/bibleinayear/biaybot/internal/plan"
)

var CLI struct {
	In  string `name:"in" short:"i" default:"plan.txt" help:"Reading plan text file to parse." type:"path"`
	Out string `name:"out" short:"o" default:"reading_plan.json" help:"Where to write the JSON output." type:"path"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("planparse"),
		kong.Description("Convert a Bible reading plan text file into JSON."),
		kong.UsageOnError(),
	)

	in, err := os.Open(CLI.In)
	if err != nil {
		log.Fatalf("Could not open input file %s: %v", CLI.In, err)
	}
	defer in.Close()

	records, err := plan.Parse(in)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", CLI.In, err)
	}

	if err := plan.Save(CLI.Out, records); err != nil {
		log.Fatalf("Failed to save output: %v", err)
	}

	log.Printf("Parsed %d day records, saved JSON output to %s", len(records), CLI.Out)
}
