// Package seedlog generates a synthetic form-response log in the sheet
// cache shape, so the pipeline can be exercised locally without Sheets
// credentials.
package seedlog

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/ohbehave/pkg/logger"
)

// Form label and marker strings matching the live sheet.
const (
	labelGamesFriends = "ゲイム、友達と"
	labelGamesSolo    = "ゲイム、自己"
	labelDrink        = "飲み物"
	labelSleep        = "寝る"

	markerStart = "Start"
	markerStop  = "Stop"
)

// Session probability constants.
const (
	gamingDayOdds    = 0.4  // fraction of days with a gaming session
	friendsOdds      = 0.5  // of those, fraction played with friends
	interruptionOdds = 0.25 // fraction of nights with a mid-night wake
	retroDrinkOdds   = 0.2  // fraction of drinks logged retroactively
	commentOdds      = 0.15 // fraction of days with a comment
	maxDrinksPerDay  = 3
)

var header = []string{
	"Timestamp", "event 今", "start/stop", "event 別時",
	"retro start/stop", "Retro: Time", "Retro: Date", "comments",
}

var comments = []string{
	"long day at work", "slept badly", "felt great",
	"skipped the gym", "late dinner",
}

// Config holds configuration for log generation.
type Config struct {
	Days       int    // number of calendar days to cover
	Seed       int64  // RNG seed for reproducible output
	OutputFile string // cache JSON destination
}

// Generate produces rows for cfg.Days consecutive days ending yesterday
// and writes them, header first, to cfg.OutputFile in the cache shape.
func Generate(ctx context.Context, cfg *Config) error {
	if cfg.Days < 1 {
		return fmt.Errorf("days must be positive, got %d", cfg.Days)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	end := time.Now().AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(cfg.Days - 1))
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local)

	values := [][]string{header}
	for d := 0; d < cfg.Days; d++ {
		day := first.AddDate(0, 0, d)
		values = append(values, dayRows(rng, day)...)
	}

	if err := write(cfg.OutputFile, values); err != nil {
		return err
	}
	logger.Get().Info(ctx, "seed log written",
		logger.String("path", cfg.OutputFile),
		logger.Int("days", cfg.Days),
		logger.Int("rows", len(values)-1),
	)
	return nil
}

// dayRows generates the events of one calendar day in submission order.
func dayRows(rng *rand.Rand, day time.Time) [][]string {
	var rows [][]string

	if rng.Float64() < gamingDayOdds {
		label := labelGamesSolo
		if rng.Float64() < friendsOdds {
			label = labelGamesFriends
		}
		gameStart := at(day, 19, rng.Intn(120))
		gameStop := gameStart.Add(time.Duration(60+rng.Intn(120)) * time.Minute)
		rows = append(rows, liveRow(gameStart, label, markerStart))
		rows = append(rows, liveRow(gameStop, label, markerStop))
	}

	for i := 0; i < rng.Intn(maxDrinksPerDay+1); i++ {
		sip := at(day, 17, rng.Intn(300))
		if rng.Float64() < retroDrinkOdds {
			// Logged after midnight about the evening before.
			submitted := at(day.AddDate(0, 0, 1), 0, 15+rng.Intn(60))
			rows = append(rows, retroRow(submitted, labelDrink, sip))
		} else {
			rows = append(rows, liveRow(sip, labelDrink, ""))
		}
	}

	if rng.Float64() < commentOdds {
		row := liveRow(at(day, 12, rng.Intn(240)), "", "")
		row[7] = comments[rng.Intn(len(comments))]
		rows = append(rows, row)
	}

	// Sleep: start late evening, wake the next morning, sometimes with a
	// mid-night interruption.
	sleepStart := at(day, 22, 30+rng.Intn(120))
	wake := at(day.AddDate(0, 0, 1), 6, 30+rng.Intn(90))
	rows = append(rows, liveRow(sleepStart, labelSleep, markerStart))
	if rng.Float64() < interruptionOdds {
		mid := at(day.AddDate(0, 0, 1), 2, rng.Intn(90))
		rows = append(rows, liveRow(mid, labelSleep, markerStop))
		rows = append(rows, liveRow(mid.Add(time.Duration(5+rng.Intn(20))*time.Minute), labelSleep, markerStart))
	}
	rows = append(rows, liveRow(wake, labelSleep, markerStop))

	return rows
}

func at(day time.Time, hour, extraMinutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.Local).
		Add(time.Duration(extraMinutes) * time.Minute)
}

func liveRow(ts time.Time, label, marker string) []string {
	return []string{stamp(ts), label, marker, "", "", "", "", ""}
}

func retroRow(submitted time.Time, label string, occurred time.Time) []string {
	return []string{
		stamp(submitted), "", "", label, "",
		occurred.Format("15:04"), "", "",
	}
}

func stamp(ts time.Time) string {
	return ts.Format("1/2/2006 15:04:05")
}

type cachePayload struct {
	Values [][]string `json:"values"`
}

func write(path string, values [][]string) error {
	data, err := json.Marshal(cachePayload{Values: values})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
