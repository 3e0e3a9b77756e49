// Command seed writes a synthetic form-response log into the sheet
// cache, for running the pipeline without Sheets credentials.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/okian/ohbehave/internal/seedlog"
	"github.com/okian/ohbehave/pkg/logger"
)

const defaultDays = 90

func main() {
	var (
		days   = flag.Int("days", defaultDays, "Number of days to generate")
		seed   = flag.Int64("seed", 1, "RNG seed for reproducible output")
		output = flag.String("output", "cache/data.json", "Cache file to write")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	cfg := &seedlog.Config{
		Days:       *days,
		Seed:       *seed,
		OutputFile: *output,
	}
	if err := seedlog.Generate(context.Background(), cfg); err != nil {
		os.Stderr.WriteString("seed generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
