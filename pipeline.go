package featkit

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
)

// Config configures a Pipeline.
type Config struct {
	Steps  []Step
	Logger *zap.Logger // optional, defaults to a no-op logger
}

// Step is one generator application within a Pipeline.
type Step struct {
	Generator Generator
	Column    string
	Opts      []Option
}

// Pipeline applies an ordered list of generators to a dataframe.
type Pipeline struct {
	steps []Step
	log   *zap.Logger
}

func New(cfg Config) (*Pipeline, error) {
	if len(cfg.Steps) == 0 {
		return nil, errors.New("featkit: at least one step required")
	}
	for i, s := range cfg.Steps {
		if s.Generator == nil {
			return nil, fmt.Errorf("featkit: step %d: generator required", i)
		}
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Pipeline{
		steps: cfg.Steps,
		log:   log,
	}, nil
}

// Apply runs every step in order and returns the resulting dataframe. The
// first failing step aborts the run.
func (p *Pipeline) Apply(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	for i, s := range p.steps {
		opts := append([]Option{WithLogger(p.log)}, s.Opts...)
		out, err := s.Generator.GenerateFeature(df, s.Column, opts...)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("step %d (%s): %w", i, s.Generator.Name(), err)
		}
		p.log.Debug("applied generator",
			zap.String("generator", s.Generator.Name()),
			zap.Int("rows", out.Nrow()),
			zap.Int("columns", out.Ncol()))
		df = out
	}
	return df, nil
}
