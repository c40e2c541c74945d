package featkit

import "github.com/go-gota/gota/dataframe"

// Generator creates or transforms dataframe columns. Implementations never
// modify their input; the returned dataframe carries the new features.
//
// An empty column means "not given". Generators that require a column return
// ErrColumnRequired in that case; Hour instead scans the whole frame.
type Generator interface {
	// Name identifies the transformation (e.g. "Hour").
	Name() string

	// FeatureType classifies the produced feature (e.g. "transformation").
	FeatureType() string

	// GenerateFeature applies the transformation to df and returns the
	// resulting dataframe.
	GenerateFeature(df dataframe.DataFrame, column string, opts ...Option) (dataframe.DataFrame, error)
}

// GeneratorFunc is the signature accepted by Custom.
type GeneratorFunc = func(df dataframe.DataFrame, column string) (dataframe.DataFrame, error)

// Custom wraps a user function as a Generator. The function is called as-is
// with the dataframe and column; no validation is performed. Empty name and
// featureType fall back to "custom_feature" and "custom_feature_type".
func Custom(fn GeneratorFunc, name, featureType string) Generator {
	if name == "" {
		name = "custom_feature"
	}
	if featureType == "" {
		featureType = "custom_feature_type"
	}
	return &customGenerator{fn: fn, name: name, featureType: featureType}
}

type customGenerator struct {
	fn          GeneratorFunc
	name        string
	featureType string
}

func (g *customGenerator) Name() string        { return g.name }
func (g *customGenerator) FeatureType() string { return g.featureType }

func (g *customGenerator) GenerateFeature(df dataframe.DataFrame, column string, _ ...Option) (dataframe.DataFrame, error) {
	return g.fn(df, column)
}

func hasColumn(df dataframe.DataFrame, column string) bool {
	for _, name := range df.Names() {
		if name == column {
			return true
		}
	}
	return false
}
