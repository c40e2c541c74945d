package featkit

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// NewGroupAverage builds the aggregator that groups df by the key column.
// Aggregate returns one row per distinct key value with its frequency count
// and the mean of every other column, named {column}_avg. Every non-key
// column must be numeric; a string or bool column fails the aggregation.
func NewGroupAverage(df dataframe.DataFrame, key string, opts ...Option) (Aggregator, error) {
	set := newSettings(opts)
	ts, err := newTableSet(Tables{Data1: df, Label1: set.label}, opts)
	if err != nil {
		return nil, err
	}
	ts.key1 = key
	return &groupAverage{ts}, nil
}

type groupAverage struct {
	*tableSet
}

func (a *groupAverage) Aggregate() (dataframe.DataFrame, error) {
	df := a.first()
	out, err := valueCounts(df, a.key1)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	var cols []string
	for _, name := range df.Names() {
		if name == a.key1 {
			continue
		}
		if t := df.Col(name).Type(); t != series.Int && t != series.Float {
			return dataframe.DataFrame{}, fmt.Errorf("featkit: column %q holds %s values: %w", name, t, ErrNotNumeric)
		}
		cols = append(cols, name)
	}

	groups := out.Col(a.key1).Records()
	pos := make(map[string]int, len(groups))
	for i, v := range groups {
		pos[v] = i
	}
	keyRecs := df.Col(a.key1).Records()
	size := make([]float64, len(groups))
	for _, kv := range keyRecs {
		size[pos[kv]]++
	}

	for _, name := range cols {
		vals := df.Col(name).Float()
		sums := make([]float64, len(groups))
		for ri, kv := range keyRecs {
			sums[pos[kv]] += vals[ri]
		}
		for i := range sums {
			sums[i] /= size[i]
		}
		out = out.Mutate(series.New(sums, series.Float, name+"_avg"))
	}
	return out, out.Error()
}
