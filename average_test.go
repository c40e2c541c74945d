package featkit_test

import (
	"errors"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/featkit/featkit"
)

func TestGroupAverage(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"mammal", "mammal", "reptile"}, series.String, "type"),
		series.New([]int{4, 4, 4}, series.Int, "num_legs"),
		series.New([]int{0, 2, 0}, series.Int, "num_arms"),
	)

	agg, err := featkit.NewGroupAverage(df, "type")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := agg.Aggregate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"type", "count", "num_legs_avg", "num_arms_avg"}
	got := out.Names()
	if len(got) != len(want) {
		t.Fatalf("columns: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("columns: got %v, want %v", got, want)
		}
	}

	counts := frequencyMap(t, out, "type")
	if counts["mammal"] != 2 || counts["reptile"] != 1 {
		t.Errorf("counts: got %v, want mammal 2, reptile 1", counts)
	}

	keys := out.Col("type").Records()
	legs := out.Col("num_legs_avg").Float()
	arms := out.Col("num_arms_avg").Float()
	for i, k := range keys {
		switch k {
		case "mammal":
			if legs[i] != 4 || arms[i] != 1 {
				t.Errorf("mammal: got legs %v arms %v, want 4 and 1", legs[i], arms[i])
			}
		case "reptile":
			if legs[i] != 4 || arms[i] != 0 {
				t.Errorf("reptile: got legs %v arms %v, want 4 and 0", legs[i], arms[i])
			}
		default:
			t.Errorf("unexpected key %q", k)
		}
	}
}

func TestGroupAverage_SingleRows(t *testing.T) {
	agg, err := featkit.NewGroupAverage(animalFrame(), "animal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := agg.Aggregate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// every animal occurs once, so the averages are the raw values
	keys := out.Col("animal").Records()
	legs := out.Col("num_legs_avg").Float()
	want := map[string]float64{"dog": 4, "cat": 4, "monkey": 2}
	for i, k := range keys {
		if legs[i] != want[k] {
			t.Errorf("%s: got num_legs_avg %v, want %v", k, legs[i], want[k])
		}
	}
}

func TestGroupAverage_NonNumericColumn(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"mammal", "reptile"}, series.String, "type"),
		series.New([]string{"warm", "cold"}, series.String, "blood_temp"),
	)

	agg, err := featkit.NewGroupAverage(df, "type")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = agg.Aggregate()
	if !errors.Is(err, featkit.ErrNotNumeric) {
		t.Fatalf("got %v, want ErrNotNumeric", err)
	}
}

func TestGroupAverage_UnknownKey(t *testing.T) {
	agg, err := featkit.NewGroupAverage(animalFrame(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = agg.Aggregate()
	if !errors.Is(err, featkit.ErrColumnNotFound) {
		t.Fatalf("got %v, want ErrColumnNotFound", err)
	}
}
