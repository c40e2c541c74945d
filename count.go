package featkit

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"
)

// NewSingleKeyCount builds the aggregator that counts occurrences of each
// distinct value in the key column of df. Aggregate returns a two-column
// (key, count) table, most frequent first, ties keeping first-seen order.
func NewSingleKeyCount(df dataframe.DataFrame, key string, opts ...Option) (Aggregator, error) {
	set := newSettings(opts)
	ts, err := newTableSet(Tables{Data1: df, Label1: set.label}, opts)
	if err != nil {
		return nil, err
	}
	ts.key1 = key
	return &singleKeyCount{ts}, nil
}

type singleKeyCount struct {
	*tableSet
}

func (a *singleKeyCount) Aggregate() (dataframe.DataFrame, error) {
	return valueCounts(a.first(), a.key1)
}

// NewRelationalCount builds the aggregator that counts values of the
// relationship key across two tables. Aggregate counts each value of
// t.Key1 in t.Data1, then appends a zero-count row for every distinct value
// of t.Key2 found in t.Data2 that is absent from t.Data1.
func NewRelationalCount(t Tables, opts ...Option) (Aggregator, error) {
	ts, err := newTableSet(t, opts)
	if err != nil {
		return nil, err
	}
	return &relationalCount{ts}, nil
}

type relationalCount struct {
	*tableSet
}

func (a *relationalCount) Aggregate() (dataframe.DataFrame, error) {
	if a.key1 == "" || a.key2 == "" {
		return dataframe.DataFrame{}, fmt.Errorf("featkit: relational count: %w", ErrNoRelationship)
	}
	df2, ok := a.Table(a.label2)
	if !ok {
		return dataframe.DataFrame{}, fmt.Errorf("featkit: relational count: %w", ErrSecondTableRequired)
	}

	out, err := valueCounts(a.first(), a.key1)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	if !hasColumn(df2, a.key2) {
		return dataframe.DataFrame{}, fmt.Errorf("featkit: column %q: %w", a.key2, ErrColumnNotFound)
	}

	seen := make(map[string]bool)
	for _, v := range out.Col(a.key1).Records() {
		seen[v] = true
	}

	var missing []string
	for _, v := range df2.Col(a.key2).Records() {
		if !seen[v] {
			seen[v] = true
			missing = append(missing, v)
		}
	}
	if len(missing) == 0 {
		return out, nil
	}

	a.log.Debug("zero-filling values absent from first table",
		zap.String("key", a.key1), zap.Int("rows", len(missing)))
	fill := dataframe.New(
		series.New(missing, out.Col(a.key1).Type(), a.key1),
		series.New(make([]int, len(missing)), series.Int, "count"),
	)
	out = out.RBind(fill)
	return out, out.Error()
}

// valueCounts is the frequency table shared by the counting aggregators.
func valueCounts(df dataframe.DataFrame, key string) (dataframe.DataFrame, error) {
	if key == "" {
		return dataframe.DataFrame{}, fmt.Errorf("featkit: count: %w", ErrColumnRequired)
	}
	if !hasColumn(df, key) {
		return dataframe.DataFrame{}, fmt.Errorf("featkit: column %q: %w", key, ErrColumnNotFound)
	}

	col := df.Col(key)
	counts := make(map[string]int)
	var order []string
	for _, v := range col.Records() {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	ns := make([]int, len(order))
	for i, v := range order {
		ns[i] = counts[v]
	}
	out := dataframe.New(
		series.New(order, col.Type(), key),
		series.New(ns, series.Int, "count"),
	)
	return out, out.Error()
}
