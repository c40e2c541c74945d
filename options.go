package featkit

import "go.uber.org/zap"

// Option adjusts how a single generator call or aggregator instance runs.
type Option func(*settings)

type settings struct {
	log   *zap.Logger
	label string
}

func newSettings(opts []Option) *settings {
	s := &settings{
		log:   zap.NewNop(),
		label: "",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLogger attaches a logger for debug diagnostics. Operations are silent
// without it.
func WithLogger(log *zap.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}

// WithLabel names the first table of a single-table aggregator, replacing the
// default "data1".
func WithLabel(label string) Option {
	return func(s *settings) {
		s.label = label
	}
}
