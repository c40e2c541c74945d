package featkit_test

import (
	"fmt"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/featkit/featkit"
)

func benchFrame(rows int) dataframe.DataFrame {
	keys := make([]string, rows)
	ts := make([]string, rows)
	amounts := make([]float64, rows)
	for i := 0; i < rows; i++ {
		keys[i] = fmt.Sprintf("key_%d", i%50)
		ts[i] = fmt.Sprintf("2024-01-01 %02d:%02d:00", i%24, i%60)
		amounts[i] = float64(i)
	}
	return dataframe.New(
		series.New(keys, series.String, "key"),
		series.New(ts, series.String, "ts"),
		series.New(amounts, series.Float, "amount"),
	)
}

func BenchmarkSingleKeyCount(b *testing.B) {
	df := benchFrame(1000)
	agg, _ := featkit.NewSingleKeyCount(df, "key")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		agg.Aggregate()
	}
}

func BenchmarkGroupAverage(b *testing.B) {
	keys := make([]string, 1000)
	amounts := make([]float64, 1000)
	for i := range keys {
		keys[i] = fmt.Sprintf("key_%d", i%50)
		amounts[i] = float64(i)
	}
	df := dataframe.New(
		series.New(keys, series.String, "key"),
		series.New(amounts, series.Float, "amount"),
	)
	agg, _ := featkit.NewGroupAverage(df, "key")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		agg.Aggregate()
	}
}

func BenchmarkHour(b *testing.B) {
	df := benchFrame(1000)
	gen := featkit.Hour()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.GenerateFeature(df, "ts")
	}
}
