// Package sheets acquires the raw form-response rows from the source
// spreadsheet via the Sheets v4 API, with an on-disk cache of the raw
// response so repeated runs within the freshness window stay offline.
package sheets

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/okian/ohbehave/internal/domain/model"
	"github.com/okian/ohbehave/pkg/logger"
	"github.com/okian/ohbehave/pkg/metrics"
)

// Positional columns of the form response range.
const (
	colTimestamp = iota
	colEvent
	colStartStop
	colRetroEvent
	colRetroStartStop
	colRetroTime
	colRetroDate
	colComment
)

// Accepted layouts for the live timestamp column. Google Forms emits the
// first; hand-fixed rows sometimes carry the second.
var timestampLayouts = []string{"1/2/2006 15:04:05", "2006-01-02 15:04:05"}

// Client reads the form responses, preferring the cache when it is
// fresh enough.
type Client struct {
	spreadsheetID   string
	readRange       string
	credentialsPath string
	cachePath       string
	cacheMaxAge     time.Duration
	ignoreCache     bool
	now             func() time.Time
	log             logger.Logger
}

// NewClient constructs a Client. A spreadsheet id must be provided via
// WithSpreadsheet before Rows can fetch live data.
func NewClient(opts ...Option) *Client {
	c := &Client{
		readRange:   "Form Responses 1!A1:H",
		cachePath:   "cache/data.json",
		cacheMaxAge: 168 * time.Hour,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Named("sheets")
	}
	return c
}

// Rows returns the parsed form rows, newest data first preferred from
// cache: the cache is used when its newest row's timestamp is younger
// than the freshness window, otherwise the live sheet is fetched and the
// cache overwritten.
func (c *Client) Rows(ctx context.Context) ([]model.RawRow, error) {
	values, fromCache := c.cachedValues(ctx)
	if !fromCache {
		live, err := c.fetchLive(ctx)
		if err != nil {
			return nil, err
		}
		values = live
		if err := saveCache(c.cachePath, values); err != nil {
			c.log.Warn(ctx, "failed to write sheet cache",
				logger.String("path", c.cachePath), logger.Error(err))
		}
	}

	if len(values) < 2 {
		return nil, ErrNoData
	}
	rows := c.parseRows(ctx, values[1:]) // skip header row
	metrics.RecordRowsFetched(len(rows))
	return rows, nil
}

// cachedValues loads the cache and decides whether it is usable.
func (c *Client) cachedValues(ctx context.Context) ([][]string, bool) {
	if c.ignoreCache {
		metrics.RecordCacheMiss()
		return nil, false
	}
	values, err := loadCache(c.cachePath)
	if err != nil || len(values) < 2 {
		metrics.RecordCacheMiss()
		return nil, false
	}
	last := values[len(values)-1]
	if len(last) == 0 {
		metrics.RecordCacheMiss()
		return nil, false
	}
	ts, err := parseTimestamp(last[colTimestamp])
	if err != nil || c.now().Sub(ts) > c.cacheMaxAge {
		metrics.RecordCacheMiss()
		return nil, false
	}
	metrics.RecordCacheHit()
	c.log.Debug(ctx, "using cached sheet data",
		logger.String("path", c.cachePath), logger.Time("lastRow", ts))
	return values, true
}

// fetchLive reads the configured range from the live spreadsheet.
func (c *Client) fetchLive(ctx context.Context) ([][]string, error) {
	if c.spreadsheetID == "" {
		return nil, fmt.Errorf("%w: no spreadsheet id configured", ErrFetch)
	}
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(c.credentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentials, err)
	}
	resp, err := svc.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if len(resp.Values) == 0 {
		return nil, ErrNoData
	}

	values := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprint(cell)
		}
		values[i] = cells
	}
	c.log.Info(ctx, "fetched live sheet data", logger.Int("rows", len(values)))
	return values, nil
}

// parseRows maps positional cells into RawRows. Rows whose live
// timestamp cannot be parsed are skipped with a warning; they cannot be
// placed anywhere.
func (c *Client) parseRows(ctx context.Context, values [][]string) []model.RawRow {
	rows := make([]model.RawRow, 0, len(values))
	for i, cells := range values {
		ts, err := parseTimestamp(cell(cells, colTimestamp))
		if err != nil {
			c.log.Warn(ctx, "skipping row with unparseable timestamp",
				logger.Int("row", i+2), logger.String("value", cell(cells, colTimestamp)))
			continue
		}
		rows = append(rows, model.RawRow{
			Timestamp:      ts,
			Event:          cell(cells, colEvent),
			StartStop:      cell(cells, colStartStop),
			RetroEvent:     cell(cells, colRetroEvent),
			RetroStartStop: cell(cells, colRetroStartStop),
			RetroTime:      cell(cells, colRetroTime),
			RetroDate:      cell(cells, colRetroDate),
			Comment:        cell(cells, colComment),
		})
	}
	return rows
}

func cell(cells []string, idx int) string {
	if idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

func parseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		t, perr := time.ParseInLocation(layout, s, time.Local)
		if perr == nil {
			return t, nil
		}
		err = perr
	}
	return time.Time{}, err
}
