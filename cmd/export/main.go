// Command export rebuilds the daily behavior table and the weekly sleep
// summary from the form-response log and writes them to files.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/okian/ohbehave/internal/adapters/export"
	"github.com/okian/ohbehave/internal/adapters/sheets"
	service "github.com/okian/ohbehave/internal/app"
	"github.com/okian/ohbehave/internal/config"
	"github.com/okian/ohbehave/pkg/logger"
)

func main() {
	var (
		excludeGaming  = flag.Bool("g", false, "Exclude gaming sessions from the export")
		excludeAlcohol = flag.Bool("a", false, "Exclude drink counts from the export")
		excludeSleep   = flag.Bool("s", false, "Exclude sleep data from the export")
		ignoreCache    = flag.Bool("i", false, "Ignore the cache and fetch the live sheet")
		verbose        = flag.Bool("v", false, "Enable verbose logging")
		format         = flag.String("format", "", "Export format: csv or parquet (default from config)")
		dir            = flag.String("dir", "", "Output directory (default from config)")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *format != "" {
		cfg.ExportFormat = *format
	}
	if *dir != "" {
		cfg.ExportDir = *dir
	}

	asmp, err := cfg.Assumptions()
	if err != nil {
		os.Stderr.WriteString("invalid assumptions config: " + err.Error() + "\n")
		os.Exit(1)
	}

	source := sheets.NewClient(
		sheets.WithSpreadsheet(cfg.SpreadsheetID, cfg.SheetRange),
		sheets.WithCredentialsFile(cfg.CredentialsPath),
		sheets.WithCache(cfg.CachePath, cfg.CacheMaxAge()),
		sheets.WithIgnoreCache(cfg.IgnoreCache || *ignoreCache),
		sheets.WithLogger(log.Named("sheets")),
	)

	svc := service.New(
		service.WithSource(source),
		service.WithAssumptions(asmp),
		service.WithExclusions(*excludeGaming, *excludeAlcohol, *excludeSleep),
		service.WithLogger(log.Named("service")),
	)

	if err := svc.Build(ctx); err != nil {
		log.Error(ctx, "build failed", logger.Error(err))
		os.Exit(1)
	}

	dailyPath := export.DailyFileName(cfg.ExportDir,
		*excludeGaming, *excludeAlcohol, *excludeSleep, cfg.ExportFormat)
	if err := export.WriteDaily(dailyPath, cfg.ExportFormat, svc.Daily(ctx)); err != nil {
		log.Error(ctx, "daily export failed",
			logger.String("path", dailyPath), logger.Error(err))
		os.Exit(1)
	}
	log.Info(ctx, "daily table exported", logger.String("path", dailyPath))

	if !*excludeSleep {
		weeklyPath := export.WeeklyFileName(cfg.ExportDir)
		if err := export.WriteWeeklyCSV(weeklyPath, svc.Weekly(ctx)); err != nil {
			log.Error(ctx, "weekly export failed",
				logger.String("path", weeklyPath), logger.Error(err))
			os.Exit(1)
		}
		log.Info(ctx, "weekly summary exported", logger.String("path", weeklyPath))
	}
}
