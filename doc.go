// Package featkit provides feature generators and aggregators for gota
// dataframes.
//
// It is designed for feature-engineering steps in ML pipelines: deriving
// time components from timestamp columns, enriching postal codes with
// location data, and computing per-group counts and averages across one or
// two related tables.
//
// Basic usage:
//
//	pipe, err := featkit.New(featkit.Config{
//	    Steps: []featkit.Step{
//	        {Generator: featkit.DateTimeSplit(), Column: "signup_at"},
//	        {Generator: featkit.ZipEnrichment(dir), Column: "zip"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	enriched, err := pipe.Apply(users)
//
//	agg, _ := featkit.NewSingleKeyCount(enriched, "signup_at_weekday")
//	byWeekday, _ := agg.Aggregate()
//
// Generators never modify their input dataframe; every operation returns a
// new one.
package featkit
