package featkit

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"
)

// timeLayouts are the accepted timestamp formats, tried in order. gota has no
// native timestamp type, so timestamp columns are string columns whose values
// parse under one of these.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTimestamp(v string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("value %q does not match any known timestamp layout", v)
}

// columnTimestamps coerces every value of column to a timestamp. The whole
// column must parse; one bad value fails the coercion.
func columnTimestamps(df dataframe.DataFrame, column string) ([]time.Time, error) {
	if !hasColumn(df, column) {
		return nil, fmt.Errorf("featkit: column %q: %w", column, ErrColumnNotFound)
	}
	col := df.Col(column)
	if col.Type() != series.String {
		return nil, fmt.Errorf("featkit: column %q holds %s values, not timestamps", column, col.Type())
	}
	recs := col.Records()
	times := make([]time.Time, len(recs))
	for i, r := range recs {
		t, err := parseTimestamp(r)
		if err != nil {
			return nil, fmt.Errorf("featkit: column %q: %w", column, err)
		}
		times[i] = t
	}
	return times, nil
}

// Hour returns the generator that converts timestamp values to their hour of
// day (0-23).
//
// With a column given, that column is coerced and replaced; a coercion
// failure is returned to the caller. With no column, every column that fully
// parses as timestamps is converted, best effort, and ErrNoTimestampColumns
// is returned only when none qualified.
func Hour() Generator { return hourGenerator{} }

type hourGenerator struct{}

func (hourGenerator) Name() string        { return "Hour" }
func (hourGenerator) FeatureType() string { return "transformation" }

func (g hourGenerator) GenerateFeature(df dataframe.DataFrame, column string, opts ...Option) (dataframe.DataFrame, error) {
	set := newSettings(opts)

	if column != "" {
		times, err := columnTimestamps(df, column)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		return mutateHours(df, column, times), nil
	}

	converted := 0
	for _, name := range df.Names() {
		times, err := columnTimestamps(df, name)
		if err != nil {
			continue
		}
		df = mutateHours(df, name, times)
		set.log.Debug("converted column to hour of day", zap.String("column", name))
		converted++
	}
	if converted == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("featkit: %s: %w", g.Name(), ErrNoTimestampColumns)
	}
	return df, nil
}

func mutateHours(df dataframe.DataFrame, column string, times []time.Time) dataframe.DataFrame {
	hours := make([]int, len(times))
	for i, t := range times {
		hours[i] = t.Hour()
	}
	return df.Mutate(series.New(hours, series.Int, column))
}

// DateTimeSplit returns the generator that splits one timestamp column into
// five: {column}_year, _month, _day, _weekday (Monday=0) and _time
// (HH:MM:SS). The original column is dropped.
func DateTimeSplit() Generator { return dateTimeSplitGenerator{} }

type dateTimeSplitGenerator struct{}

func (dateTimeSplitGenerator) Name() string        { return "DateTimeSplit" }
func (dateTimeSplitGenerator) FeatureType() string { return "transformation" }

func (g dateTimeSplitGenerator) GenerateFeature(df dataframe.DataFrame, column string, _ ...Option) (dataframe.DataFrame, error) {
	if column == "" {
		return dataframe.DataFrame{}, fmt.Errorf("featkit: %s: %w", g.Name(), ErrColumnRequired)
	}
	times, err := columnTimestamps(df, column)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	n := len(times)
	years := make([]int, n)
	months := make([]int, n)
	days := make([]int, n)
	weekdays := make([]int, n)
	clock := make([]string, n)
	for i, t := range times {
		years[i] = t.Year()
		months[i] = int(t.Month())
		days[i] = t.Day()
		weekdays[i] = (int(t.Weekday()) + 6) % 7
		clock[i] = t.Format("15:04:05")
	}

	df = df.Mutate(series.New(years, series.Int, column+"_year"))
	df = df.Mutate(series.New(months, series.Int, column+"_month"))
	df = df.Mutate(series.New(days, series.Int, column+"_day"))
	df = df.Mutate(series.New(weekdays, series.Int, column+"_weekday"))
	df = df.Mutate(series.New(clock, series.String, column+"_time"))
	df = df.Drop(column)
	return df, df.Error()
}
