package export

import (
	"fmt"

	"github.com/okian/ohbehave/internal/domain/model"
)

// WriteDaily writes the daily table to path in the named format.
func WriteDaily(path, format string, rows []*model.DailyRow) error {
	switch format {
	case "csv":
		return WriteDailyCSV(path, rows)
	case "parquet":
		return WriteDailyParquet(path, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
