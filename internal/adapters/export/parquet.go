package export

import (
	"math"

	parquetlocal "github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/okian/ohbehave/internal/domain/model"
)

type dailyParquetRow struct {
	Date                 string  `parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Weekday              string  `parquet:"name=weekday, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	GamesFriendsStart    string  `parquet:"name=games_friends_start, type=BYTE_ARRAY, convertedtype=UTF8"`
	GamesFriendsStop     string  `parquet:"name=games_friends_stop, type=BYTE_ARRAY, convertedtype=UTF8"`
	GamesSoloStart       string  `parquet:"name=games_solo_start, type=BYTE_ARRAY, convertedtype=UTF8"`
	GamesSoloStop        string  `parquet:"name=games_solo_stop, type=BYTE_ARRAY, convertedtype=UTF8"`
	DrinksTot            int32   `parquet:"name=drinks_tot, type=INT32"`
	SleepStart           string  `parquet:"name=sleep_start, type=BYTE_ARRAY, convertedtype=UTF8"`
	SleepEndMain         string  `parquet:"name=sleep_end_main, type=BYTE_ARRAY, convertedtype=UTF8"`
	SleepEndAll          string  `parquet:"name=sleep_end_all, type=BYTE_ARRAY, convertedtype=UTF8"`
	SleepStartHr         float64 `parquet:"name=sleep_start_hr, type=DOUBLE"`
	SleepEndMainHr       float64 `parquet:"name=sleep_end_main_hr, type=DOUBLE"`
	SleepEndAllHr        float64 `parquet:"name=sleep_end_all_hr, type=DOUBLE"`
	SleepDurationHrs     float64 `parquet:"name=sleep_duration_hrs, type=DOUBLE"`
	TimeToFallAsleepHrs  float64 `parquet:"name=sleep_time_to_fall_asleep_hrs, type=DOUBLE"`
	InterruptionsNatural int32   `parquet:"name=sleep_interruptions_natural, type=INT32"`
	InterruptionsAlarm   int32   `parquet:"name=sleep_interruptions_alarm, type=INT32"`
	InterruptionsTotal   int32   `parquet:"name=sleep_interruptions_total, type=INT32"`
	CommentsAll          string  `parquet:"name=comments_all, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// WriteDailyParquet writes the daily table to path as a SNAPPY-compressed
// parquet file. Absent optional values are encoded as NaN for doubles and
// empty strings for timestamps.
func WriteDailyParquet(path string, rows []*model.DailyRow) error {
	fw, err := parquetlocal.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	pw, err := writer.NewParquetWriter(fw, new(dailyParquetRow), 4)
	if err != nil {
		_ = fw.Close()
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, r := range rows {
		row := dailyParquetRow{
			Date:                 r.Date.Format("2006-01-02"),
			Weekday:              r.Weekday,
			GamesFriendsStart:    formatTS(r.GamesFriends.Start),
			GamesFriendsStop:     formatTS(r.GamesFriends.Stop),
			GamesSoloStart:       formatTS(r.GamesSolo.Start),
			GamesSoloStop:        formatTS(r.GamesSolo.Stop),
			DrinksTot:            int32(r.DrinksTot),
			SleepStart:           formatTS(r.Sleep.StartTS),
			SleepEndMain:         formatTS(r.Sleep.EndMainTS),
			SleepEndAll:          formatTS(r.Sleep.EndAllTS),
			SleepStartHr:         valueOrNaN(r.Sleep.StartHr),
			SleepEndMainHr:       valueOrNaN(r.Sleep.EndMainHr),
			SleepEndAllHr:        valueOrNaN(r.Sleep.EndAllHr),
			SleepDurationHrs:     r.Sleep.DurationHrs,
			TimeToFallAsleepHrs:  valueOrNaN(r.Sleep.TimeToFallAsleepHrs),
			InterruptionsNatural: int32(r.Sleep.InterruptionsNatural),
			InterruptionsAlarm:   int32(r.Sleep.InterruptionsAlarm),
			InterruptionsTotal:   int32(r.Sleep.InterruptionsTotal),
			CommentsAll:          r.CommentsAll,
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			_ = fw.Close()
			return err
		}
	}
	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return err
	}
	return fw.Close()
}

func valueOrNaN(f *float64) float64 {
	if f == nil {
		return math.NaN()
	}
	return *f
}
