package featkit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
)

// Default table labels used when the caller does not name its tables.
const (
	DefaultLabel1 = "data1"
	DefaultLabel2 = "data2"
)

// Aggregator produces grouped summaries across one or two tables. Instances
// are built per aggregation task and discarded after use.
type Aggregator interface {
	// Aggregate runs the aggregation and returns the summary table.
	Aggregate() (dataframe.DataFrame, error)

	// Relationships returns a formatted description of the declared
	// relationships, one "label1.key1 -> label2.key2" line each.
	Relationships() string

	// Table returns the table stored under label.
	Table(label string) (dataframe.DataFrame, bool)

	// Labels returns the labels of all stored tables, sorted.
	Labels() []string

	// NewRelationship redefines the active join as key1 in the first table
	// matching key2 in the second.
	NewRelationship(key1, key2 string)
}

// Tables configures an aggregator: one or two dataframes, optional labels,
// and an optional relationship between Key1 in Data1 and Key2 in Data2.
type Tables struct {
	Data1  dataframe.DataFrame
	Data2  *dataframe.DataFrame
	Key1   string
	Key2   string
	Label1 string
	Label2 string
}

// tableSet is the bookkeeping shared by all aggregator variants.
type tableSet struct {
	tables  map[string]dataframe.DataFrame
	label1  string
	label2  string
	key1    string
	key2    string
	related map[string]string
	log     *zap.Logger
}

func newTableSet(t Tables, opts []Option) (*tableSet, error) {
	set := newSettings(opts)
	if t.Label1 == "" {
		t.Label1 = DefaultLabel1
	}
	if t.Label2 == "" {
		t.Label2 = DefaultLabel2
	}

	ts := &tableSet{
		tables:  map[string]dataframe.DataFrame{t.Label1: t.Data1},
		label1:  t.Label1,
		label2:  t.Label2,
		key1:    t.Key1,
		key2:    t.Key2,
		related: make(map[string]string),
		log:     set.log,
	}

	if t.Key1 != "" {
		if t.Key2 == "" {
			return nil, fmt.Errorf("featkit: %w", ErrBothKeysRequired)
		}
		if t.Data2 == nil {
			return nil, fmt.Errorf("featkit: %w", ErrSecondTableRequired)
		}
		ts.related[t.Key1] = t.Key2
	}
	if t.Data2 != nil {
		ts.tables[t.Label2] = *t.Data2
	}
	return ts, nil
}

func (s *tableSet) Relationships() string {
	keys := make([]string, 0, len(s.related))
	for key := range s.related {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("\n RELATIONSHIPS:\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "%s.%s -> %s.%s\n", s.label1, key, s.label2, s.related[key])
	}
	return b.String()
}

func (s *tableSet) Table(label string) (dataframe.DataFrame, bool) {
	df, ok := s.tables[label]
	return df, ok
}

func (s *tableSet) Labels() []string {
	labels := make([]string, 0, len(s.tables))
	for label := range s.tables {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func (s *tableSet) NewRelationship(key1, key2 string) {
	s.related[key1] = key2
	s.key1 = key1
	s.key2 = key2
}

func (s *tableSet) first() dataframe.DataFrame {
	return s.tables[s.label1]
}
