package featkit

import "errors"

var (
	// ErrColumnRequired is returned when a generator or aggregator needs an
	// explicit column and none was given.
	ErrColumnRequired = errors.New("column required")

	// ErrColumnNotFound is returned when a named column is absent from the
	// dataframe.
	ErrColumnNotFound = errors.New("column not found")

	// ErrNoTimestampColumns is returned by Hour when no column could be
	// resolved to timestamps.
	ErrNoTimestampColumns = errors.New("no timestamp columns resolved")

	// ErrBothKeysRequired is returned when a left relationship key is given
	// without a right key.
	ErrBothKeysRequired = errors.New("need both keys for a relationship")

	// ErrSecondTableRequired is returned when a relationship is declared but
	// only one table is present.
	ErrSecondTableRequired = errors.New("need a second table to define a relationship")

	// ErrNoRelationship is returned by two-table aggregators when no active
	// relationship was declared.
	ErrNoRelationship = errors.New("no relationship defined")

	// ErrNotNumeric is returned when a mean is requested over a column that
	// does not hold numeric values.
	ErrNotNumeric = errors.New("column is not numeric")

	// ErrZipNotFound is returned by zip directories for unknown postal codes.
	ErrZipNotFound = errors.New("zip code not found")
)
