// Command extract-country-mapping reads the IMF government-spending
// indicator CSV, extracts the unique country code/label pairs, prints a
// copy-paste JS snippet for countryMapping.js, and writes the
// country-mapping.json lookup artifact.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arun664/government-spending-explorer/config"
	"github.com/arun664/government-spending-explorer/countriesparser"
	"github.com/arun664/government-spending-explorer/logging"
	"github.com/arun664/government-spending-explorer/validation"
	"github.com/joho/godotenv"
)

func init() {
	// Read the env variables from the working directory; if that fails,
	// try the executable's directory
	if err := godotenv.Load(); err != nil {
		ex, exErr := os.Executable()
		if exErr != nil {
			return
		}
		_ = godotenv.Load(filepath.Join(filepath.Dir(ex), ".env"))
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogDir, cfg.LogLevel)

	if err := run(cfg); err != nil {
		logging.Error("Extraction failed", "error", err)
		os.Exit(1)
	}
}

// run executes the one-shot extract pipeline. A missing input file is
// reported on stdout and returns nil: nothing is written and the
// process exits normally.
func run(cfg *config.Config) error {
	table, err := countriesparser.ParseCountries(cfg.InputCSV, cfg.CodeColumn, cfg.LabelColumn)
	if err != nil {
		if errors.Is(err, countriesparser.ErrInputNotFound) {
			fmt.Printf("Error: %s not found\n", cfg.InputCSV)
			return nil
		}
		return err
	}

	entries := table.Sorted()

	validator := validation.NewCountryValidator()
	if err := validator.ValidateMapping(entries); err != nil {
		logging.Warn("Mapping quality check failed", "error", err)
	}

	fmt.Printf("Found %d unique countries\n\n", len(entries))
	fmt.Print(countriesparser.RenderSnippet(entries))

	mapping := countriesparser.BuildMapping(entries)
	if err := countriesparser.WriteMappingJSON(cfg.OutputJSON, mapping); err != nil {
		return err
	}

	fmt.Printf("\n✅ Mapping saved to %s\n", cfg.OutputJSON)
	fmt.Printf("✅ Total countries: %d\n", len(entries))

	return nil
}
