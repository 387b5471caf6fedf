// Command flatyaml parses a flat document file and prints it as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/flatyaml/go-flatyaml"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "flatyaml",
		Usage:     "parse flat key/value documents and print them as JSON",
		ArgsUsage: "<file>",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: flatyaml <file>", 1)
	}

	raw, err := os.ReadFile(c.Args().First())
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var result map[string]any
	if err := flatyaml.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("parsing %s: %w", c.Args().First(), err)
	}

	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling to JSON: %w", err)
	}

	fmt.Println(string(b))
	return nil
}
